package app

import (
	"flag"
	"fmt"
	"os"
	"time"

	"tilescape/internal/camera"
	"tilescape/internal/weather"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters for the application. The
// same fields can be loaded from a YAML file; flags given on the command
// line take precedence over the file.
type Config struct {
	Layout  string `yaml:"layout"`
	Seed    int64  `yaml:"seed"`
	TPS     int    `yaml:"tps"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Weather string `yaml:"weather"`

	// File is the YAML file to read; it is never read from a file itself.
	File string `yaml:"-"`

	Camera  camera.Config  `yaml:"camera"`
	Effects weather.Config `yaml:"effects"`
}

// NewConfig returns a Config populated with sensible defaults. A zero seed
// is replaced by the clock when the world is built.
func NewConfig() *Config {
	return &Config{
		Layout:  "castle",
		TPS:     60,
		Width:   1280,
		Height:  720,
		Weather: weather.Sunny.String(),
		Camera:  camera.DefaultConfig(),
		Effects: weather.DefaultConfig(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Layout, "layout", c.Layout, "terrain layout (meadow, village, castle)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "layout and weather seed, 0 picks one from the clock")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.StringVar(&c.Weather, "weather", c.Weather, "initial weather (sunny, night, rain, storm)")
	fs.StringVar(&c.File, "config", c.File, "YAML configuration file")
}

// LoadFile merges the YAML document at path into c. Keys missing from the
// document keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return c.Decode(data)
}

// Decode merges a YAML document into c.
func (c *Config) Decode(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// ResolvedSeed returns the configured seed, or a clock-derived one when the
// seed is zero.
func (c *Config) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Parse binds c to a fresh FlagSet and parses args. When -config names a
// file it is loaded and the arguments are parsed again, so explicit flags
// override file values.
func Parse(name string, args []string) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.File == "" {
		return cfg, nil
	}
	if err := cfg.LoadFile(cfg.File); err != nil {
		return nil, err
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
