package render

import "io"

// Point is a position on the canvas in pixels, origin top-left.
type Point struct {
	X float64
	Y float64
}

// Canvas is the drawing capability the presenter needs. Colors are
// "#RRGGBB" strings. Any 2D raster backend can satisfy it; tests use a
// recording implementation.
type Canvas interface {
	// Clear fills the whole canvas with the given color.
	Clear(hexColor string)
	// SetColor sets the color for subsequent draw calls.
	SetColor(hexColor string)
	// SetLineWidth sets the stroke width for subsequent lines and outlines.
	SetLineWidth(w float64)
	// DrawLine strokes a segment between two points.
	DrawLine(from, to Point)
	// DrawPoint fills a dot of the given radius.
	DrawPoint(p Point, radius float64)
	// DrawCircleOutline strokes an unfilled circle.
	DrawCircleOutline(center Point, radius float64)
	// DrawText draws a string anchored at (ax, ay) relative to the text
	// box, 0.5/0.5 meaning centered on the given point.
	DrawText(s string, at Point, ax, ay float64)
	// EncodePNG writes the canvas as PNG bytes.
	EncodePNG(w io.Writer) error
}
