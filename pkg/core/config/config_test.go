package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Display.Precision != 3 {
		t.Errorf("default precision = %d, want 3", cfg.Display.Precision)
	}
	if cfg.Display.AngleUnit != "degrees" {
		t.Errorf("default angle unit = %q, want degrees", cfg.Display.AngleUnit)
	}
	// Wrapping and the plot start on, matching the interactive surfaces.
	if !cfg.Display.WrapAngle {
		t.Error("default WrapAngle = false, want true")
	}
	if !cfg.Display.ShowPlot {
		t.Error("default ShowPlot = false, want true")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[general]
name = "phasor-test"
log_level = "debug"

[display]
precision = 4
angle_unit = "radians"
wrap_angle = true

[server]
port = 9090
read_timeout = "10s"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "phasor-test" {
		t.Errorf("Name = %q", cfg.General.Name)
	}
	if cfg.Display.Precision != 4 {
		t.Errorf("Precision = %d", cfg.Display.Precision)
	}
	if cfg.Display.AngleUnit != "radians" {
		t.Errorf("AngleUnit = %q", cfg.Display.AngleUnit)
	}
	if !cfg.Display.WrapAngle {
		t.Error("WrapAngle = false, want true")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout.Duration != 10*time.Second {
		t.Errorf("ReadTimeout = %v", cfg.Server.ReadTimeout.Duration)
	}
	// Missing values fall back to defaults.
	if cfg.Server.WriteTimeout.Duration != 120*time.Second {
		t.Errorf("WriteTimeout = %v, want default", cfg.Server.WriteTimeout.Duration)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
general:
  log_level: warn
display:
  precision: 2
  show_plot: true
server:
  port: 8888
  write_timeout: 45s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", cfg.General.LogLevel)
	}
	if cfg.Display.Precision != 2 {
		t.Errorf("Precision = %d", cfg.Display.Precision)
	}
	if !cfg.Display.ShowPlot {
		t.Error("ShowPlot = false, want true")
	}
	if cfg.Server.Port != 8888 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if cfg.Server.WriteTimeout.Duration != 45*time.Second {
		t.Errorf("WriteTimeout = %v", cfg.Server.WriteTimeout.Duration)
	}
}

// Explicit zero values are settings, not absences: precision = 0 is a
// valid display precision and wrap_angle/show_plot may be switched off.
func TestLoadExplicitZeroValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[display]
precision = 0
wrap_angle = false
show_plot = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Display.Precision != 0 {
		t.Errorf("Precision = %d, want 0 (explicitly configured)", cfg.Display.Precision)
	}
	if cfg.Display.WrapAngle {
		t.Error("WrapAngle = true, want false (explicitly configured)")
	}
	if cfg.Display.ShowPlot {
		t.Error("ShowPlot = true, want false (explicitly configured)")
	}
	// Untouched sections still carry the defaults.
	if cfg.Display.AngleUnit != "degrees" {
		t.Errorf("AngleUnit = %q, want default", cfg.Display.AngleUnit)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want default", cfg.Server.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.toml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"precision too high", func(c *Config) { c.Display.Precision = 7 }, true},
		{"precision negative", func(c *Config) { c.Display.Precision = -1 }, true},
		{"bad unit", func(c *Config) { c.Display.AngleUnit = "gradians" }, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
