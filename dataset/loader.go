package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	ridership "github.com/theoremus-urban-solutions/ridership-radial"
)

// Load parses a CSV file into trip records. The first row is the header;
// column names are matched case-insensitively. The count column is required
// and must be numeric (thousands separators like "1,234" are accepted); any
// other configured column must be present in the header too.
func Load(path string, cols Columns) ([]TripRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	csvr := csv.NewReader(f)
	rec, err := csvr.ReadAll()
	if err != nil {
		return nil, ridership.NewDataFormatError("read csv: %v", err)
	}
	if len(rec) == 0 {
		return nil, ridership.NewDataFormatError("empty file: no header row")
	}
	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}

	if cols.Count == "" {
		return nil, ridership.NewDataFormatError("no count column configured")
	}
	countIdx := idx(cols.Count)
	if countIdx < 0 {
		return nil, ridership.NewDataFormatError("missing required column %q", cols.Count)
	}
	originIdx, destIdx, labelIdx := -1, -1, -1
	if cols.Origin != "" {
		if originIdx = idx(cols.Origin); originIdx < 0 {
			return nil, ridership.NewDataFormatError("missing required column %q", cols.Origin)
		}
	}
	if cols.Destination != "" {
		if destIdx = idx(cols.Destination); destIdx < 0 {
			return nil, ridership.NewDataFormatError("missing required column %q", cols.Destination)
		}
	}
	if cols.Label != "" {
		labelIdx = idx(cols.Label)
	}

	records := make([]TripRecord, 0, len(rec)-1)
	for i, row := range rec[1:] {
		count, err := parseCount(row[countIdx])
		if err != nil {
			return nil, ridership.NewDataFormatErrorAt(i+2, "bad count %q: %v", row[countIdx], err)
		}
		r := TripRecord{Count: count}
		if originIdx >= 0 {
			r.Origin = row[originIdx]
		}
		if destIdx >= 0 {
			r.Destination = row[destIdx]
		}
		if labelIdx >= 0 {
			r.Label = row[labelIdx]
		}
		records = append(records, r)
	}
	return records, nil
}

// parseCount parses a trip count, stripping thousands separators first.
// BART monthly exports write counts like "12,345".
func parseCount(s string) (int, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return strconv.Atoi(clean)
}

// Aggregate sums trip counts per station, grouped by the origin or the
// destination side of each record. Labels are attached to the grouped side
// when a label column was read.
func Aggregate(records []TripRecord, key string) (*ridership.StationAggregate, error) {
	counts := map[string]int{}
	labels := map[string]string{}
	for _, r := range records {
		var id string
		switch key {
		case ridership.KeyOrigin:
			id = r.Origin
		case ridership.KeyDestination:
			id = r.Destination
		default:
			return nil, ridership.NewDataFormatError("unknown aggregation key %q", key)
		}
		if id == "" {
			return nil, ridership.NewDataFormatError("record with empty %s key", key)
		}
		counts[id] += r.Count
		if r.Label != "" {
			labels[id] = r.Label
		}
	}
	return ridership.NewStationAggregate(counts, labels), nil
}
