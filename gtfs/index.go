package gtfs

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	ridership "github.com/theoremus-urban-solutions/ridership-radial"
)

// StopActivityIndex stores per-stop activity from a GTFS static feed in
// memory. Scheduled stop-time events per stop act as the ridership proxy
// when no trip-count export is available.
type StopActivityIndex struct {
	agencyID   string
	stopNames  map[string]string // stop_id -> stop_name
	stopEvents map[string]int    // stop_id -> stop_times rows at that stop
	routeNames map[string]string // route_id -> route_short_name
}

// NewIndexFromZip opens a local GTFS zip and indexes stops.txt,
// stop_times.txt and routes.txt.
func NewIndexFromZip(path, agencyID string) (*StopActivityIndex, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open gtfs zip: %w", err)
	}
	defer zr.Close()
	return indexFiles(zr.File, agencyID)
}

// NewIndexFromBytes indexes a GTFS zip held in memory.
func NewIndexFromBytes(data []byte, agencyID string) (*StopActivityIndex, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open gtfs zip: %w", err)
	}
	return indexFiles(zr.File, agencyID)
}

func indexFiles(files []*zip.File, agencyID string) (*StopActivityIndex, error) {
	g := &StopActivityIndex{
		agencyID:   agencyID,
		stopNames:  map[string]string{},
		stopEvents: map[string]int{},
		routeNames: map[string]string{},
	}
	for _, f := range files {
		name := strings.ToLower(f.Name)
		if name == "stops.txt" || name == "stop_times.txt" || name == "routes.txt" {
			if err := g.consumeCSV(f); err != nil {
				return nil, err
			}
		}
	}
	if len(g.stopEvents) == 0 && len(g.stopNames) == 0 {
		return nil, ridership.NewDataFormatError("gtfs zip has no stops.txt or stop_times.txt")
	}
	return g, nil
}

// GetStopName returns the stop_name for a stop, empty when unknown.
func (g *StopActivityIndex) GetStopName(stopID string) string {
	return g.stopNames[stopID]
}

// GetRouteShortName returns the route_short_name for a route, empty when
// unknown.
func (g *StopActivityIndex) GetRouteShortName(routeID string) string {
	return g.routeNames[routeID]
}

// AgencyID returns the configured agency identifier.
func (g *StopActivityIndex) AgencyID() string {
	return g.agencyID
}

// EventCount returns the number of scheduled stop-time events at a stop.
func (g *StopActivityIndex) EventCount(stopID string) int {
	return g.stopEvents[stopID]
}

// Aggregate converts the index into the per-station totals the chart
// pipeline consumes, labeled with stop names.
func (g *StopActivityIndex) Aggregate() *ridership.StationAggregate {
	return ridership.NewStationAggregate(g.stopEvents, g.stopNames)
}
