package render

import (
	"io"

	"github.com/fogleman/gg"
)

// GG is the fogleman/gg backed canvas. Drawing is deterministic: the same
// sequence of calls on the same dimensions encodes to identical PNG bytes.
type GG struct {
	dc *gg.Context
}

// NewGG creates a gg-backed canvas of the given pixel dimensions. Text uses
// the context's built-in default face, so no font files are required.
func NewGG(width, height int) *GG {
	return &GG{dc: gg.NewContext(width, height)}
}

func (c *GG) Clear(hexColor string) {
	c.dc.SetHexColor(hexColor)
	c.dc.Clear()
}

func (c *GG) SetColor(hexColor string) {
	c.dc.SetHexColor(hexColor)
}

func (c *GG) SetLineWidth(w float64) {
	c.dc.SetLineWidth(w)
}

func (c *GG) DrawLine(from, to Point) {
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	c.dc.Stroke()
}

func (c *GG) DrawPoint(p Point, radius float64) {
	c.dc.DrawCircle(p.X, p.Y, radius)
	c.dc.Fill()
}

func (c *GG) DrawCircleOutline(center Point, radius float64) {
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.dc.Stroke()
}

func (c *GG) DrawText(s string, at Point, ax, ay float64) {
	c.dc.DrawStringAnchored(s, at.X, at.Y, ax, ay)
}

func (c *GG) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}
