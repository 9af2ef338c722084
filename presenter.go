package ridership

import (
	"math"
	"strconv"

	"github.com/theoremus-urban-solutions/ridership-radial/config"
	"github.com/theoremus-urban-solutions/ridership-radial/render"
)

// StationVizPresenter draws a radial layout onto a canvas. It draws exactly
// one line segment per placed station; reference rings and labels are
// circles and text, never lines.
type StationVizPresenter struct {
	canvas render.Canvas
	cfg    config.ChartConfig
}

// NewStationVizPresenter creates a presenter for the given canvas and chart
// configuration.
func NewStationVizPresenter(canvas render.Canvas, cfg config.ChartConfig) *StationVizPresenter {
	return &StationVizPresenter{canvas: canvas, cfg: cfg}
}

// Draw renders the full chart: background, title, reference rings, the
// center point and one radial segment per station. An empty layout renders
// the background, title and center point only.
func (p *StationVizPresenter) Draw(layout *RadialLayout) error {
	if p.cfg.Width <= 0 || p.cfg.Height <= 0 {
		return NewRenderError("canvas dimensions must be positive, got %dx%d", p.cfg.Width, p.cfg.Height)
	}

	p.canvas.Clear(p.cfg.Background)
	p.drawTitle()
	p.drawAxis(layout)
	p.drawData(layout)
	return nil
}

func (p *StationVizPresenter) center() render.Point {
	return render.Point{X: float64(p.cfg.Width) / 2, Y: float64(p.cfg.Height) / 2}
}

func (p *StationVizPresenter) drawTitle() {
	if p.cfg.Title == "" {
		return
	}
	p.canvas.SetColor(p.cfg.Foreground)
	p.canvas.DrawText(p.cfg.Title, render.Point{X: float64(p.cfg.Width) / 2, Y: float64(p.cfg.Height) - 20}, 0.5, 0.5)
}

// drawAxis draws the non-data chart elements: the center point with its
// label and one reference ring per tick interval, each annotated with its
// trip count.
func (p *StationVizPresenter) drawAxis(layout *RadialLayout) {
	c := p.center()

	p.canvas.SetColor(p.cfg.Foreground)
	p.canvas.DrawPoint(c, 3)
	if p.cfg.CenterLabel != "" {
		p.canvas.DrawText(p.cfg.CenterLabel, render.Point{X: c.X, Y: c.Y - 8}, 0.5, 1)
	}

	maxCount := maxLayoutCount(layout)
	if p.cfg.TickInterval <= 0 || maxCount <= 0 {
		return
	}
	// Rings at every interval, the last one at or just past the maximum.
	for v := p.cfg.TickInterval; v < maxCount+p.cfg.TickInterval; v += p.cfg.TickInterval {
		r := layout.RadiusFor(v, maxCount)
		p.canvas.SetColor(p.cfg.TickColor)
		p.canvas.SetLineWidth(1)
		p.canvas.DrawCircleOutline(c, r)
		p.canvas.SetColor(p.cfg.Foreground)
		p.canvas.DrawText(groupDigits(v), render.Point{X: c.X + r, Y: c.Y}, 0.5, 0.5)
	}
}

func (p *StationVizPresenter) drawData(layout *RadialLayout) {
	c := p.center()
	for _, st := range layout.Placed {
		end := render.Point{
			X: c.X + st.Radius*math.Cos(st.Angle),
			Y: c.Y + st.Radius*math.Sin(st.Angle),
		}
		p.canvas.SetColor(p.cfg.Foreground)
		p.canvas.SetLineWidth(1)
		p.canvas.DrawLine(c, end)

		// Label just past the tip, anchored away from the center.
		label := render.Point{
			X: c.X + (st.Radius+4)*math.Cos(st.Angle),
			Y: c.Y + (st.Radius+4)*math.Sin(st.Angle),
		}
		ax := 0.0
		if math.Cos(st.Angle) < 0 {
			ax = 1.0
		}
		p.canvas.DrawText(st.DisplayName(), label, ax, 0.5)
	}
}

func maxLayoutCount(layout *RadialLayout) int {
	max := 0
	for _, st := range layout.Placed {
		if st.Count > max {
			max = st.Count
		}
	}
	return max
}

// groupDigits formats a non-negative count with thousands separators,
// matching the tick labels of the original chart ("5,000").
func groupDigits(v int) string {
	s := strconv.Itoa(v)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return string(out)
}
