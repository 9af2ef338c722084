package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"strings"

	ridership "github.com/theoremus-urban-solutions/ridership-radial"
)

func (g *StopActivityIndex) consumeCSV(f *zip.File) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	rec, err := csvr.ReadAll()
	if err != nil {
		return ridership.NewDataFormatError("read %s: %v", f.Name, err)
	}
	if len(rec) == 0 {
		return nil
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
	switch strings.ToLower(f.Name) {
	case "stops.txt":
		sID := idx("stop_id")
		sName := idx("stop_name")
		if sID < 0 {
			return ridership.NewDataFormatError("%s: missing required column stop_id", f.Name)
		}
		for _, row := range rec[1:] {
			if sName >= 0 {
				g.stopNames[row[sID]] = row[sName]
			} else {
				g.stopNames[row[sID]] = ""
			}
		}
	case "stop_times.txt":
		sID := idx("stop_id")
		if sID < 0 {
			return ridership.NewDataFormatError("%s: missing required column stop_id", f.Name)
		}
		for _, row := range rec[1:] {
			g.stopEvents[row[sID]]++
		}
	case "routes.txt":
		rID := idx("route_id")
		rSN := idx("route_short_name")
		if rID < 0 || rSN < 0 {
			return nil
		}
		for _, row := range rec[1:] {
			g.routeNames[row[rID]] = row[rSN]
		}
	}
	return nil
}
