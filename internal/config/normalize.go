package config

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeInput()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeInput() {
	if value, ok := os.LookupEnv("VTTEXT_INPUT_ENCODING"); ok && strings.TrimSpace(value) != "" {
		c.Input.Encoding = value
	}
	c.Input.Encoding = strings.ToLower(strings.TrimSpace(c.Input.Encoding))
	if c.Input.Encoding == "" {
		c.Input.Encoding = defaultInputEncoding
	}
}

func (c *Config) normalizeOutput() error {
	c.Output.FileMode = strings.TrimSpace(c.Output.FileMode)
	if c.Output.FileMode == "" {
		c.Output.FileMode = defaultOutputFileMode
	}
	mode, err := strconv.ParseUint(c.Output.FileMode, 8, 32)
	if err != nil {
		return fmt.Errorf("output.file_mode: invalid octal value %q", c.Output.FileMode)
	}
	c.fileMode = fs.FileMode(mode)
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("VTTEXT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv("VTTEXT_LOG_FORMAT"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		file, err := expandPath(strings.TrimSpace(c.Logging.File))
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = file
	}
	return nil
}
