package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Config holds runtime configuration for the annotation window and app behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug    bool   `json:"debug"`
	LogLevel string `json:"log_level"`
	DarkMode bool   `json:"dark_mode"`

	// Display surface the image is stretched onto; box scaling derives from it.
	DisplayWidth  int `json:"display_width"`
	DisplayHeight int `json:"display_height"`

	// Decoded images kept for prev/next navigation.
	ImageCacheSize int `json:"image_cache_size"`

	// Seconds a status message stays visible.
	StatusSeconds int `json:"status_seconds"`
}

// DefaultPath is the config file under the user's XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "vqa-annotator", "config.json")
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		LogLevel:       "info",
		DarkMode:       false,
		DisplayWidth:   1920,
		DisplayHeight:  1080,
		ImageCacheSize: 8,
		StatusSeconds:  3,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.DisplayWidth <= 0 {
		c.DisplayWidth = 1920
	}
	if c.DisplayHeight <= 0 {
		c.DisplayHeight = 1080
	}
	if c.ImageCacheSize < 0 {
		c.ImageCacheSize = 0
	}
	if c.StatusSeconds <= 0 {
		c.StatusSeconds = 3
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = "info"
	}
	return nil
}

// Level maps LogLevel to a slog level. Debug forces debug level.
func (c *Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
