package ridership

import "math"

// PlacedStation is a station resolved to polar coordinates: an angle in
// radians and a radius in pixels from the chart center.
type PlacedStation struct {
	Station
	Angle  float64
	Radius float64
}

// RadialLayout places every aggregated station on the circle. Angles are
// evenly spaced in aggregate order; the radius is proportional to the trip
// count, with the maximum count landing exactly on MaxRadius.
type RadialLayout struct {
	Placed    []PlacedStation
	MaxRadius float64
}

// ComputeRadialLayout derives the radial layout from an aggregate. An empty
// aggregate, or one whose counts are all zero, yields a layout whose radii
// are all zero; the presenter then draws the center point only.
func ComputeRadialLayout(agg *StationAggregate, maxRadius float64) (*RadialLayout, error) {
	if maxRadius <= 0 {
		return nil, NewRenderError("max radius must be positive, got %v", maxRadius)
	}
	stations := agg.Stations()
	layout := &RadialLayout{
		Placed:    make([]PlacedStation, 0, len(stations)),
		MaxRadius: maxRadius,
	}
	// One spare lane so the first and last stations do not overlap at 0.
	lanes := float64(len(stations) + 1)
	maxCount := agg.MaxCount()
	for i, st := range stations {
		angle := 2 * math.Pi * float64(i+1) / lanes
		radius := 0.0
		if maxCount > 0 {
			radius = float64(st.Count) / float64(maxCount) * maxRadius
		}
		layout.Placed = append(layout.Placed, PlacedStation{Station: st, Angle: angle, Radius: radius})
	}
	return layout, nil
}

// RadiusFor maps a count onto the layout's radial scale.
func (l *RadialLayout) RadiusFor(count, maxCount int) float64 {
	if maxCount <= 0 {
		return 0
	}
	return float64(count) / float64(maxCount) * l.MaxRadius
}
