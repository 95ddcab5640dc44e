// Package logging assembles structured slog loggers and formatting helpers used
// across vttext.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and tags each conversion with a run identifier. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Loggers never write to stdout unless asked to: stdout carries transcript
// text.
package logging
