package config

// ChartConfig contains canvas geometry and styling for the radial chart
type ChartConfig struct {
	Width        int     `yaml:"width" validate:"gt=0"`
	Height       int     `yaml:"height" validate:"gt=0"`
	MaxRadius    float64 `yaml:"maxRadius" validate:"gt=0"`
	TickInterval int     `yaml:"tickInterval" validate:"gte=0"`
	Background   string  `yaml:"background" validate:"omitempty,hexcolor"`
	Foreground   string  `yaml:"foreground" validate:"omitempty,hexcolor"`
	TickColor    string  `yaml:"tickColor" validate:"omitempty,hexcolor"`
	Title        string  `yaml:"title"`
	CenterLabel  string  `yaml:"centerLabel"`
}

// DatasetConfig describes the CSV input: column names and the station key
// trips are aggregated by.
type DatasetConfig struct {
	OriginColumn      string `yaml:"originColumn"`
	DestinationColumn string `yaml:"destinationColumn"`
	CountColumn       string `yaml:"countColumn"`
	LabelColumn       string `yaml:"labelColumn"`
	AggregateKey      string `yaml:"aggregateKey" validate:"omitempty,oneof=origin destination"`
}

// GTFSConfig contains GTFS snapshot-mode configuration
type GTFSConfig struct {
	AgencyID string `yaml:"agency_id" validate:"omitempty"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Chart   ChartConfig   `yaml:"chart"`
	Dataset DatasetConfig `yaml:"dataset"`
	GTFS    GTFSConfig    `yaml:"gtfs"`
}
