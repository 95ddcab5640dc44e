// Package config loads, normalizes, and validates vttext configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files (or YAML when the path says so), and honours
// environment overrides such as VTTEXT_LOG_LEVEL. Missing configuration files
// are not an error; defaults are used instead.
//
// Always obtain settings through this package so downstream code receives
// canonical encodings, log formats, and clear validation errors.
package config
