package ridership

import "sort"

// Station is one aggregated chart category: a station (or route) identifier,
// its display label and the total trip count attributed to it.
type Station struct {
	ID    string
	Label string
	Count int
}

// DisplayName returns the label when one is set, the ID otherwise.
func (s Station) DisplayName() string {
	if s.Label != "" {
		return s.Label
	}
	return s.ID
}

// StationAggregate holds the per-station totals in drawing order: ascending
// count, ties broken by lexicographic ID. The ordering is part of the output
// contract; it makes repeated runs over the same input byte-identical.
type StationAggregate struct {
	stations []Station
	maxCount int
}

// NewStationAggregate builds an aggregate from per-key totals and optional
// per-key labels. Every key appears exactly once.
func NewStationAggregate(counts map[string]int, labels map[string]string) *StationAggregate {
	agg := &StationAggregate{stations: make([]Station, 0, len(counts))}
	for id, count := range counts {
		agg.stations = append(agg.stations, Station{ID: id, Label: labels[id], Count: count})
		if count > agg.maxCount {
			agg.maxCount = count
		}
	}
	sort.Slice(agg.stations, func(i, j int) bool {
		if agg.stations[i].Count != agg.stations[j].Count {
			return agg.stations[i].Count < agg.stations[j].Count
		}
		return agg.stations[i].ID < agg.stations[j].ID
	})
	return agg
}

// Stations returns the stations in drawing order.
func (a *StationAggregate) Stations() []Station {
	return a.stations
}

// Len returns the number of distinct stations.
func (a *StationAggregate) Len() int {
	return len(a.stations)
}

// MaxCount returns the largest aggregated count, 0 for an empty aggregate.
func (a *StationAggregate) MaxCount() int {
	return a.maxCount
}

// Aggregation keys for trip records.
const (
	KeyOrigin      = "origin"
	KeyDestination = "destination"
)
