// Package gtfs indexes per-stop activity from a GTFS static feed.
//
// The index walks a GTFS zip (a local file or raw bytes, never a URL) and
// consumes stops.txt, stop_times.txt and routes.txt. Parsing GTFS once per
// run is cheap at chart scale; the whole index fits in a few maps:
//
//   - stop_id -> stop_name
//   - stop_id -> scheduled stop-time events at that stop
//   - route_id -> route_short_name
//
// Stop-time events per stop are the ridership proxy for gtfs chart mode;
// route short names label the gtfsrt vehicle-snapshot mode.
package gtfs
