package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	ridership "github.com/theoremus-urban-solutions/ridership-radial"
	"github.com/theoremus-urban-solutions/ridership-radial/config"
	"github.com/theoremus-urban-solutions/ridership-radial/dataset"
	"github.com/theoremus-urban-solutions/ridership-radial/gtfs"
	"github.com/theoremus-urban-solutions/ridership-radial/gtfsrt"
	"github.com/theoremus-urban-solutions/ridership-radial/render"
)

const usageStr = "USAGE: ridership-radial [flags] <input_path> <output_png>"

func main() {
	mode := flag.String("mode", "csv", "input kind: csv|gtfs|gtfsrt")
	configPath := flag.String("config", "", "path to config.yml")
	key := flag.String("key", "", "aggregate key: origin|destination (overrides config)")
	title := flag.String("title", "", "chart title (overrides config)")
	center := flag.String("center", "", "center label (overrides config)")
	gtfsZip := flag.String("gtfs", "", "GTFS static zip used to label gtfsrt routes")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, usageStr)
		os.Exit(2)
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	ridership.InitLogging()
	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		fatal(err)
	}
	if *key != "" {
		cfg.Dataset.AggregateKey = *key
	}
	if *title != "" {
		cfg.Chart.Title = *title
	}
	if *center != "" {
		cfg.Chart.CenterLabel = *center
	}

	agg, err := aggregate(*mode, inputPath, *gtfsZip, cfg)
	if err != nil {
		fatal(err)
	}
	log.Printf("aggregated %d stations from %s", agg.Len(), inputPath)

	layout, err := ridership.ComputeRadialLayout(agg, cfg.Chart.MaxRadius)
	if err != nil {
		fatal(err)
	}

	canvas := render.NewGG(cfg.Chart.Width, cfg.Chart.Height)
	presenter := ridership.NewStationVizPresenter(canvas, cfg.Chart)
	if err := presenter.Draw(layout); err != nil {
		fatal(err)
	}
	if err := render.SaveAtomic(canvas, outputPath); err != nil {
		fatal(err)
	}
	log.Printf("wrote %s", outputPath)
}

// aggregate builds the per-station totals for the requested input kind.
func aggregate(mode, inputPath, gtfsZip string, cfg config.AppConfig) (*ridership.StationAggregate, error) {
	switch mode {
	case "csv":
		cols := dataset.Columns{
			Origin:      cfg.Dataset.OriginColumn,
			Destination: cfg.Dataset.DestinationColumn,
			Count:       cfg.Dataset.CountColumn,
			Label:       cfg.Dataset.LabelColumn,
		}
		// Only the aggregated side of the pair is required in the header.
		if cfg.Dataset.AggregateKey == ridership.KeyOrigin {
			cols.Destination = ""
		} else {
			cols.Origin = ""
		}
		records, err := dataset.Load(inputPath, cols)
		if err != nil {
			return nil, err
		}
		return dataset.Aggregate(records, cfg.Dataset.AggregateKey)
	case "gtfs":
		idx, err := gtfs.NewIndexFromZip(inputPath, cfg.GTFS.AgencyID)
		if err != nil {
			return nil, err
		}
		return idx.Aggregate(), nil
	case "gtfsrt":
		snap, err := gtfsrt.LoadSnapshot(inputPath)
		if err != nil {
			return nil, err
		}
		var labelFor func(string) string
		if gtfsZip != "" {
			idx, err := gtfs.NewIndexFromZip(gtfsZip, cfg.GTFS.AgencyID)
			if err != nil {
				return nil, err
			}
			labelFor = idx.GetRouteShortName
		}
		return snap.Aggregate(labelFor), nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
