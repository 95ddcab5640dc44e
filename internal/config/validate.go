package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/htmlindex"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateInput() error {
	if _, err := htmlindex.Get(c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: unsupported encoding %q", c.Input.Encoding)
	}
	return nil
}

func (c *Config) validateOutput() error {
	mode := c.OutputFileMode()
	if mode&0o600 != 0o600 {
		return errors.New("output.file_mode must grant owner read and write")
	}
	if mode&^0o777 != 0 {
		return fmt.Errorf("output.file_mode %q has bits outside permission range", c.Output.FileMode)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
