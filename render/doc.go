// Package render abstracts 2D raster drawing behind a small Canvas
// capability interface and provides the fogleman/gg implementation plus an
// atomic PNG writer.
//
// The presenter draws through Canvas only, so tests can substitute a
// recording canvas and assert on the emitted drawing calls without decoding
// pixels.
package render
