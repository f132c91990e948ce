// Package config loads settings for the tile command from flags, TILE_*
// environment variables and an optional tile.yaml file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats for the render command.
const (
	FormatText   = "text"
	FormatPNG    = "png"
	FormatScreen = "screen"
)

// Config holds the resolved settings.
type Config struct {
	Width    uint32 `mapstructure:"width"`
	Height   uint32 `mapstructure:"height"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	Cols     int    `mapstructure:"cols"`
	Rows     int    `mapstructure:"rows"`
	MaxSide  int    `mapstructure:"max-side"`
	Jobs     int    `mapstructure:"jobs"`
	LogLevel string `mapstructure:"log-level"`
	LogFile  string `mapstructure:"log-file"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Width:    1920,
		Height:   1080,
		Format:   FormatText,
		Cols:     96,
		Rows:     27,
		MaxSide:  1024,
		Jobs:     4,
		LogLevel: "warn",
	}
}

// RegisterFlags adds the config flags, plus --config, to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("config", "", "path to a tile.yaml config file")
	fs.Uint32("width", d.Width, "default screen width for plans and rectangle commands")
	fs.Uint32("height", d.Height, "default screen height")
	fs.StringP("format", "f", d.Format, "render format: text, png or screen")
	fs.StringP("output", "o", d.Output, "output file (text) or directory (png); stdout if empty")
	fs.Int("cols", d.Cols, "text grid columns")
	fs.Int("rows", d.Rows, "text grid rows")
	fs.Int("max-side", d.MaxSide, "longest side of png previews in pixels")
	fs.IntP("jobs", "j", d.Jobs, "plans rendered in parallel")
	fs.String("log-level", d.LogLevel, "log level: debug, info, warn or error")
	fs.String("log-file", d.LogFile, "write JSON logs to this file instead of stderr")
}

// Load resolves the configuration for a parsed flag set registered with RegisterFlags.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TILE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	if err := readConfigFile(v, v.GetString("config")); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("format", d.Format)
	v.SetDefault("output", d.Output)
	v.SetDefault("cols", d.Cols)
	v.SetDefault("rows", d.Rows)
	v.SetDefault("max-side", d.MaxSide)
	v.SetDefault("jobs", d.Jobs)
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("log-file", d.LogFile)
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("tile")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "tile"))
	}
	v.AddConfigPath(".")

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Validate rejects settings the command cannot act on.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatPNG, FormatScreen:
	default:
		return fmt.Errorf("unknown format %q (want text, png or screen)", c.Format)
	}
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("screen size %dx%d must be non-zero", c.Width, c.Height)
	}
	if c.Width > math.MaxInt32 || c.Height > math.MaxInt32 {
		return fmt.Errorf("screen size %dx%d exceeds %d", c.Width, c.Height, math.MaxInt32)
	}
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("text grid %dx%d must be positive", c.Cols, c.Rows)
	}
	if c.MaxSide <= 0 {
		return fmt.Errorf("max-side must be positive, got %d", c.MaxSide)
	}
	if c.Jobs <= 0 {
		return fmt.Errorf("jobs must be positive, got %d", c.Jobs)
	}
	return nil
}
