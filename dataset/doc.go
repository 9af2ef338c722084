// Package dataset parses CSV ridership exports into trip records and
// aggregates them into per-station totals.
//
// Column names are a configuration concern, not a format guarantee: the
// loader takes a Columns mapping and matches header names
// case-insensitively. Two dataset shapes are supported:
//
//   - origin/destination/count rows, aggregated by either side
//   - hub-style rows (one fixed origin implied, e.g. the Berkeley BART
//     export's name,code,count), aggregated by destination
//
// Counts may carry thousands separators ("12,345"); anything else
// non-numeric is a data format error carrying the offending row number.
package dataset
