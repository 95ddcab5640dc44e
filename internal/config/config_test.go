package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"vttext/internal/config"
)

func TestLoadDefaultConfigWhenFileMissing(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "vttext", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Input.Encoding != "utf-8" {
		t.Fatalf("unexpected default encoding %q", cfg.Input.Encoding)
	}
	if !cfg.Output.Atomic || !cfg.Output.Lock {
		t.Fatalf("expected atomic locked writes by default, got %+v", cfg.Output)
	}
	if cfg.OutputFileMode() != 0o644 {
		t.Fatalf("unexpected default file mode %o", cfg.OutputFileMode())
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
}

func TestLoadTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfgVal := config.Default()
	cfgVal.Input.Encoding = " Windows-1252 "
	cfgVal.Output.Atomic = false
	cfgVal.Output.FileMode = "0600"
	cfgVal.Logging.Format = "JSON"
	cfgVal.Logging.File = filepath.Join(dir, "logs", "vttext.log")

	data, err := toml.Marshal(cfgVal)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected %s to be loaded, got %s (exists=%v)", path, resolved, exists)
	}
	if cfg.Input.Encoding != "windows-1252" {
		t.Fatalf("expected normalized encoding, got %q", cfg.Input.Encoding)
	}
	if cfg.Output.Atomic {
		t.Fatal("expected atomic writes disabled")
	}
	if cfg.OutputFileMode() != 0o600 {
		t.Fatalf("unexpected file mode %o", cfg.OutputFileMode())
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected lowercased log format, got %q", cfg.Logging.Format)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vttext.yaml")
	content := "input:\n  encoding: utf-16le\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected yaml config to exist")
	}
	if cfg.Input.Encoding != "utf-16le" {
		t.Fatalf("unexpected encoding %q", cfg.Input.Encoding)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected level %q", cfg.Logging.Level)
	}
	if !cfg.Output.Atomic {
		t.Fatal("expected omitted yaml keys to keep defaults")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("VTTEXT_LOG_LEVEL", "DEBUG")
	t.Setenv("VTTEXT_LOG_FORMAT", "json")
	t.Setenv("VTTEXT_INPUT_ENCODING", "iso-8859-1")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("env overrides not applied: %+v", cfg.Logging)
	}
	if cfg.Input.Encoding != "iso-8859-1" {
		t.Fatalf("unexpected encoding %q", cfg.Input.Encoding)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"encoding", "[input]\nencoding = \"klingon\"\n", "input.encoding"},
		{"file mode", "[output]\nfile_mode = \"rw\"\n", "output.file_mode"},
		{"unreadable mode", "[output]\nfile_mode = \"0444\"\n", "owner read and write"},
		{"log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"log level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"syntax", "[input\n", "parse config"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Input.Encoding != "utf-8" || !cfg.Output.Lock {
		t.Fatalf("sample config does not match defaults: %+v", cfg)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/captions/out.txt")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if want := filepath.Join(home, "captions", "out.txt"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}
