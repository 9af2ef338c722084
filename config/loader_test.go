package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadAppConfig_Defaults(t *testing.T) {
	cfg := Default()

	if cfg.Chart.Width != 600 || cfg.Chart.Height != 600 {
		t.Errorf("expected 600x600 canvas, got %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
	if cfg.Chart.MaxRadius != 210 {
		t.Errorf("expected max radius 210, got %v", cfg.Chart.MaxRadius)
	}
	if cfg.Chart.Background != "#EAEAEA" {
		t.Errorf("expected default background, got %s", cfg.Chart.Background)
	}
	if cfg.Dataset.AggregateKey != "origin" {
		t.Errorf("expected default aggregate key origin, got %s", cfg.Dataset.AggregateKey)
	}
	if cfg.Dataset.CountColumn != "count" {
		t.Errorf("expected default count column, got %s", cfg.Dataset.CountColumn)
	}
}

func TestLoadAppConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
chart:
  width: 800
  height: 400
  maxRadius: 150
  title: "Trips by station"
  centerLabel: "Berkeley"
dataset:
  destinationColumn: code
  labelColumn: name
  aggregateKey: destination
gtfs:
  agency_id: BART
`)
	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Chart.Width != 800 || cfg.Chart.Height != 400 {
		t.Errorf("expected 800x400 canvas, got %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
	if cfg.Chart.MaxRadius != 150 {
		t.Errorf("expected max radius 150, got %v", cfg.Chart.MaxRadius)
	}
	// Unset fields fall back to defaults.
	if cfg.Chart.Background != DefaultBackground {
		t.Errorf("expected default background, got %s", cfg.Chart.Background)
	}
	if cfg.Dataset.AggregateKey != "destination" {
		t.Errorf("expected aggregate key destination, got %s", cfg.Dataset.AggregateKey)
	}
	if cfg.Dataset.CountColumn != "count" {
		t.Errorf("expected default count column, got %s", cfg.Dataset.CountColumn)
	}
	if cfg.GTFS.AgencyID != "BART" {
		t.Errorf("expected agency BART, got %s", cfg.GTFS.AgencyID)
	}
}

func TestLoadAppConfig_ExplicitMissingFile(t *testing.T) {
	_, err := LoadAppConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err == nil {
		t.Fatal("an explicitly requested config file must exist")
	}
}

func TestLoadAppConfig_ImplicitMissingFile(t *testing.T) {
	orig, _ := os.Getwd()
	defer os.Chdir(orig)
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	cfg, err := LoadAppConfig("")
	if err != nil {
		t.Fatalf("missing implicit config should fall back to defaults, got %v", err)
	}
	if cfg.Chart.Width != DefaultWidth {
		t.Errorf("expected defaults, got width %d", cfg.Chart.Width)
	}
}

func TestLoadAppConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "negative width",
			content: "chart:\n  width: -10\n",
		},
		{
			name:    "bad color",
			content: "chart:\n  background: notacolor\n",
		},
		{
			name:    "bad aggregate key",
			content: "dataset:\n  aggregateKey: line\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := LoadAppConfig(path); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
