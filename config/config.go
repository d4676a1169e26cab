// Package config loads the planner's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig wraps every validation failure reported by Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full planner configuration, one TOML table per section.
type Config struct {
	Map     MapConfig     `toml:"map"`
	Planner PlannerConfig `toml:"planner"`
	Output  OutputConfig  `toml:"output"`
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

// MapConfig locates the occupancy map.
type MapConfig struct {
	Path string `toml:"path"`
	Side int    `toml:"side"` // 0 infers the side from the map file
}

// Point is a physical coordinate in meters.
type Point struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// PlannerConfig holds the plan endpoints and search settings.
type PlannerConfig struct {
	Start          Point   `toml:"start"`
	Goal           Point   `toml:"goal"`
	Dilate         bool    `toml:"dilate"`
	DilationRadius int     `toml:"dilation_radius"` // Chebyshev cells
	CellSize       float64 `toml:"cell_size"`       // meters per cell
	FlipY          bool    `toml:"flip_y"`          // row 0 at +Y
	RetryUndilated bool    `toml:"retry_undilated"` // replan on the raw map when dilation blocks
}

// OutputConfig names the files a plan is written to.
type OutputConfig struct {
	MapPath      string `toml:"map_path"`
	PlanPath     string `toml:"plan_path"`
	PlanYAMLPath string `toml:"plan_yaml_path"` // empty disables
}

// ServerConfig configures the HTTP and websocket server.
type ServerConfig struct {
	BindAddress  string        `toml:"bind_address"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	StreamBuffer int           `toml:"stream_buffer"` // label events queued per websocket client
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads the TOML file at path over the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			Path: "map.txt",
			Side: 32,
		},
		Planner: PlannerConfig{
			Dilate:         true,
			DilationRadius: 1,
			CellSize:       0.5,
		},
		Output: OutputConfig{
			MapPath:  "map-out.txt",
			PlanPath: "plan-out.txt",
		},
		Server: ServerConfig{
			BindAddress:  "127.0.0.1:8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			StreamBuffer: 256,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	switch {
	case c.Map.Side < 0:
		return fmt.Errorf("%w: map.side %d is negative", ErrInvalidConfig, c.Map.Side)
	case c.Planner.DilationRadius < 0:
		return fmt.Errorf("%w: planner.dilation_radius %d is negative", ErrInvalidConfig, c.Planner.DilationRadius)
	case !(c.Planner.CellSize > 0):
		return fmt.Errorf("%w: planner.cell_size must be positive", ErrInvalidConfig)
	case c.Server.StreamBuffer < 1:
		return fmt.Errorf("%w: server.stream_buffer must be at least 1", ErrInvalidConfig)
	case c.Logging.Format != "console" && c.Logging.Format != "json":
		return fmt.Errorf("%w: logging.format %q is not console or json", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}
