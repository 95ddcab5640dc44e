package config

import "io/fs"

const (
	defaultConfigPath     = "~/.config/vttext/config.toml"
	projectConfigName     = "vttext.toml"
	defaultInputEncoding  = "utf-8"
	defaultOutputFileMode = "0644"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
)

const defaultFileMode fs.FileMode = 0o644

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Input: Input{
			Encoding: defaultInputEncoding,
		},
		Output: Output{
			Atomic:   true,
			Lock:     true,
			FileMode: defaultOutputFileMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		fileMode: defaultFileMode,
	}
}
