// Package config defines the format-agnostic run configuration model and the
// Loader interface that fills it from a layout file.
//
// The model only describes how input lines are laid out and how the search
// behaves. Process-level settings such as log level or the healthcheck port
// belong to app.Config and come from the command line.
package config
