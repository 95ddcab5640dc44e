package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"vttext/internal/config"
)

func runInitConfig(out io.Writer, targetPath string, overwrite bool) error {
	target := strings.TrimSpace(targetPath)
	if target == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("determine default config path: %w", err)
		}
		target = defaultPath
	} else {
		expanded, err := config.ExpandPath(target)
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		target = expanded
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory %q: %w", dir, err)
	}

	if !overwrite {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("check config path: %w", err)
		}
	}

	if err := config.CreateSample(target); err != nil {
		return fmt.Errorf("create sample config: %w", err)
	}

	fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
	return nil
}

func runCheckConfig(out io.Writer, path string) error {
	cfg, resolved, exists, err := config.Load(strings.TrimSpace(path))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	fmt.Fprintf(out, "Config path: %s\n", resolved)
	if !exists {
		fmt.Fprintln(out, "Config file did not exist; defaults were used")
	}
	fmt.Fprintf(out, "Input encoding: %s\n", cfg.Input.Encoding)
	fmt.Fprintf(out, "Atomic output: %s\n", yesNo(cfg.Output.Atomic))
	fmt.Fprintln(out, "Configuration valid")
	return nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
