package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// SaveAtomic encodes the canvas fully in memory, writes the bytes to a temp
// file next to the destination and renames it into place. A failure at any
// step leaves no partial output behind.
func SaveAtomic(c Canvas, path string) error {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".radial-*.png")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write output: %w", err)
	}
	// CreateTemp files are 0600; the chart is a build artifact.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
