// Package config loads the paleosky configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/paleosky/paleosky/internal/site"
)

// Config is the full application configuration. Every field has a default,
// so a missing or partial file is not an error.
type Config struct {
	Site    string  `toml:"site"`
	Year    int     `toml:"year"`
	Day     int     `toml:"day"`
	Hour    float64 `toml:"hour"`
	Catalog Catalog `toml:"catalog"`
	Serve   Serve   `toml:"serve"`
	Log     Log     `toml:"log"`
}

// Catalog points at optional external star and constellation files. Empty
// paths mean the embedded catalog.
type Catalog struct {
	StarsPath    string `toml:"stars"`
	SegmentsPath string `toml:"constellations"`
}

// Serve configures the HTTP API surface.
type Serve struct {
	Listen string `toml:"listen"`
}

// Log configures logging output.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is present: the Giza
// site at an epoch where the shaft alignments are interesting.
func Default() Config {
	return Config{
		Site: string(site.Giza),
		Year: -2500,
		Day:  100,
		Hour: 22,
		Serve: Serve{
			Listen: ":8080",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// DefaultPath returns the conventional config file location under the user
// config directory, or empty when that directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "paleosky", "config.toml")
}

// Load reads a TOML config file over the defaults. A missing file returns
// the defaults without error; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, ok := site.Known[site.ID(c.Site)]; !ok {
		return fmt.Errorf("unknown site %q", c.Site)
	}
	if c.Day < 1 || c.Day > 366 {
		return fmt.Errorf("day %d out of range 1-366", c.Day)
	}
	if c.Hour < 0 || c.Hour >= 24 {
		return fmt.Errorf("hour %v out of range [0, 24)", c.Hour)
	}
	return nil
}

// SiteInfo resolves the configured site preset.
func (c Config) SiteInfo() site.Info {
	return site.Lookup(site.ID(c.Site))
}
