package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	ridership "github.com/theoremus-urban-solutions/ridership-radial"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trips.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_PairDataset(t *testing.T) {
	path := writeCSV(t, "origin,destination,count\nA,B,5\nA,C,3\nB,C,2\n")
	records, err := Load(path, Columns{Origin: "origin", Destination: "destination", Count: "count"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	want := TripRecord{Origin: "A", Destination: "B", Count: 5}
	if records[0] != want {
		t.Errorf("expected %+v, got %+v", want, records[0])
	}
}

func TestLoad_HubDataset(t *testing.T) {
	// The Berkeley BART export shape: full name, short code, monthly count
	// with thousands separators.
	path := writeCSV(t, "name,code,count\nDowntown Berkeley,BK,\"12,345\"\nAshby,AS,987\n")
	records, err := Load(path, Columns{Destination: "code", Count: "count", Label: "name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Destination != "BK" || records[0].Count != 12345 {
		t.Errorf("comma-separated count not parsed: %+v", records[0])
	}
	if records[0].Label != "Downtown Berkeley" {
		t.Errorf("label column not read: %+v", records[0])
	}
}

func TestLoad_HeaderMatchingIsCaseInsensitive(t *testing.T) {
	path := writeCSV(t, "Origin,COUNT\nA,1\n")
	records, err := Load(path, Columns{Origin: "origin", Count: "count"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Origin != "A" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		cols       Columns
		wantFormat bool
	}{
		{
			name:       "missing count column",
			content:    "origin,destination\nA,B\n",
			cols:       Columns{Origin: "origin", Count: "count"},
			wantFormat: true,
		},
		{
			name:       "missing origin column",
			content:    "station,count\nA,1\n",
			cols:       Columns{Origin: "origin", Count: "count"},
			wantFormat: true,
		},
		{
			name:       "non-numeric count",
			content:    "origin,count\nA,many\n",
			cols:       Columns{Origin: "origin", Count: "count"},
			wantFormat: true,
		},
		{
			name:       "no header at all",
			content:    "",
			cols:       Columns{Origin: "origin", Count: "count"},
			wantFormat: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.content)
			_, err := Load(path, tt.cols)
			if err == nil {
				t.Fatal("expected an error")
			}
			var dfe *ridership.DataFormatError
			if errors.As(err, &dfe) != tt.wantFormat {
				t.Errorf("DataFormatError mismatch for %v", err)
			}
		})
	}
}

func TestLoad_BadCountReportsRow(t *testing.T) {
	path := writeCSV(t, "origin,count\nA,1\nB,oops\n")
	_, err := Load(path, Columns{Origin: "origin", Count: "count"})
	var dfe *ridership.DataFormatError
	if !errors.As(err, &dfe) {
		t.Fatalf("expected DataFormatError, got %v", err)
	}
	if dfe.Row != 3 {
		t.Errorf("expected error at row 3, got %d", dfe.Row)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), Columns{Count: "count"})
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
	var dfe *ridership.DataFormatError
	if errors.As(err, &dfe) {
		t.Errorf("missing file is an I/O condition, not a format error: %v", err)
	}
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "origin,count\n")
	records, err := Load(path, Columns{Origin: "origin", Count: "count"})
	if err != nil {
		t.Fatalf("header-only input should parse, got %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestAggregate_ByOrigin(t *testing.T) {
	records := []TripRecord{
		{Origin: "A", Destination: "B", Count: 5},
		{Origin: "A", Destination: "C", Count: 3},
		{Origin: "B", Destination: "C", Count: 2},
	}
	agg, err := Aggregate(records, ridership.KeyOrigin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Grouping by origin only: {A: 8, B: 2}.
	if agg.Len() != 2 {
		t.Fatalf("expected 2 stations, got %d", agg.Len())
	}
	got := map[string]int{}
	for _, st := range agg.Stations() {
		got[st.ID] = st.Count
	}
	if got["A"] != 8 || got["B"] != 2 {
		t.Errorf("expected {A: 8, B: 2}, got %v", got)
	}
}

func TestAggregate_ByDestination(t *testing.T) {
	records := []TripRecord{
		{Origin: "A", Destination: "B", Count: 5},
		{Origin: "A", Destination: "C", Count: 3},
		{Origin: "B", Destination: "C", Count: 2},
	}
	agg, err := Aggregate(records, ridership.KeyDestination)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := map[string]int{}
	for _, st := range agg.Stations() {
		got[st.ID] = st.Count
	}
	if got["B"] != 5 || got["C"] != 5 {
		t.Errorf("expected {B: 5, C: 5}, got %v", got)
	}
}

func TestAggregate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		records []TripRecord
		key     string
	}{
		{
			name:    "unknown key",
			records: []TripRecord{{Origin: "A", Count: 1}},
			key:     "line",
		},
		{
			name:    "empty key value",
			records: []TripRecord{{Destination: "B", Count: 1}},
			key:     ridership.KeyOrigin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Aggregate(tt.records, tt.key)
			var dfe *ridership.DataFormatError
			if !errors.As(err, &dfe) {
				t.Errorf("expected DataFormatError, got %v", err)
			}
		})
	}
}
