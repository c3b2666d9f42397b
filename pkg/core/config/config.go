package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Display DisplayConfig `toml:"display" yaml:"display"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// DisplayConfig holds the default display options for conversions.
// The interactive surfaces use these as their initial form state.
type DisplayConfig struct {
	Precision int    `toml:"precision" yaml:"precision"`
	AngleUnit string `toml:"angle_unit" yaml:"angle_unit"`
	WrapAngle bool   `toml:"wrap_angle" yaml:"wrap_angle"`
	ShowPlot  bool   `toml:"show_plot" yaml:"show_plot"`
}

// ServerConfig holds the web surface configuration
type ServerConfig struct {
	Host         string   `toml:"host" yaml:"host"`
	Port         int      `toml:"port" yaml:"port"`
	ReadTimeout  Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout" yaml:"write_timeout"`
}

// Duration wraps time.Duration for TOML/YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration from a YAML scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Name:      "phasor",
			LogLevel:  "info",
			LogFormat: "text",
		},
		Display: DisplayConfig{
			Precision: 3,
			AngleUnit: "degrees",
			WrapAngle: true,
			ShowPlot:  true,
		},
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  Duration{30 * time.Second},
			WriteTimeout: Duration{120 * time.Second},
		},
	}
}

// Load loads configuration from a TOML or YAML file, detected by
// extension (.toml default, .yaml/.yml for YAML). The file is decoded
// over the default configuration, so absent keys keep their defaults
// while explicit values are honored, including 0 and false.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, err
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from the PHASOR_CONFIG environment
// variable, falling back to the default locations and finally to the
// built-in defaults.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("PHASOR_CONFIG")
	if path == "" {
		defaultPaths := []string{
			"./configs/config.toml",
			"./config.toml",
			filepath.Join(os.Getenv("HOME"), ".config/phasor/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// Validate checks the configuration for values the application cannot
// work with.
func (c *Config) Validate() error {
	if c.Display.Precision < 0 || c.Display.Precision > 6 {
		return fmt.Errorf("display.precision must be between 0 and 6, got %d", c.Display.Precision)
	}
	switch strings.ToLower(c.Display.AngleUnit) {
	case "degrees", "deg", "radians", "rad":
	default:
		return fmt.Errorf("display.angle_unit must be degrees or radians, got %q", c.Display.AngleUnit)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// ServerAddress returns the host:port string for the web surface
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
