// Package config loads and validates the application configuration.
//
// Configuration is read from config.yml (or a path given with -config) and
// covers chart geometry and styling, dataset column mapping and the GTFS
// snapshot mode. Every field has a default matching the original Berkeley
// BART chart, so running without a config file is fully supported.
package config
