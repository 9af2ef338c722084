package gtfsrt

import (
	"fmt"
	"os"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	ridership "github.com/theoremus-urban-solutions/ridership-radial"
)

// VehicleSnapshot holds the decoded state of one GTFS-Realtime
// VehiclePositions feed: how many vehicles were active per route at the
// feed's header timestamp.
type VehicleSnapshot struct {
	headerTimestamp int64
	routeVehicles   map[string]int // route_id -> active vehicles
}

// LoadSnapshot reads a serialized FeedMessage from a local file.
func LoadSnapshot(path string) (*VehicleSnapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gtfsrt feed: %w", err)
	}
	return ParseSnapshot(b)
}

// ParseSnapshot decodes FeedMessage bytes and counts vehicles per route.
// Entities without a vehicle position, or whose trip carries no route_id,
// are skipped.
func ParseSnapshot(b []byte) (*VehicleSnapshot, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, ridership.NewDataFormatError("decode gtfsrt feed: %v", err)
	}
	s := &VehicleSnapshot{routeVehicles: map[string]int{}}
	if fm.Header != nil {
		s.headerTimestamp = int64(fm.Header.GetTimestamp())
	}
	for _, ent := range fm.Entity {
		v := ent.GetVehicle()
		if v == nil {
			continue
		}
		routeID := v.GetTrip().GetRouteId()
		if routeID == "" {
			continue
		}
		s.routeVehicles[routeID]++
	}
	return s, nil
}

// Timestamp returns the feed header timestamp, 0 when absent.
func (s *VehicleSnapshot) Timestamp() int64 {
	return s.headerTimestamp
}

// RouteCount returns the number of routes with at least one active vehicle.
func (s *VehicleSnapshot) RouteCount() int {
	return len(s.routeVehicles)
}

// Aggregate converts the snapshot into per-route totals for the chart
// pipeline. labelFor maps a route_id to a display name and may be nil.
func (s *VehicleSnapshot) Aggregate(labelFor func(routeID string) string) *ridership.StationAggregate {
	labels := map[string]string{}
	if labelFor != nil {
		for routeID := range s.routeVehicles {
			labels[routeID] = labelFor(routeID)
		}
	}
	return ridership.NewStationAggregate(s.routeVehicles, labels)
}
