// Package gtfsrt decodes a GTFS-Realtime VehiclePositions feed into a
// per-route vehicle snapshot.
//
// The snapshot is the live-data counterpart of the CSV ridership export:
// instead of monthly trip totals per station, the chart shows how many
// vehicles each route had in service at the feed timestamp. Feeds are read
// from local protobuf files; fetching is left to whatever produced the file.
package gtfsrt
