// Package config loads stepviz settings from defaults, an optional YAML file
// and STEPVIZ_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/stepviz/astar"
)

// Sentinel validation errors.
var (
	ErrInvalidSpeed      = errors.New("speed must not be negative")
	ErrInvalidSize       = errors.New("array size must be positive")
	ErrInvalidGrid       = errors.New("grid dimensions must be positive")
	ErrInvalidDensity    = errors.New("density must lie in [0, 1)")
	ErrInvalidWeightCost = errors.New("weight cost must be at least 1")
	ErrInvalidNodes      = errors.New("graph node count must be positive")
	ErrInvalidLogLevel   = errors.New("unknown log level")
	ErrInvalidLogFormat  = errors.New("unknown log format")
)

// Default configuration values.
const (
	defaultSpeed         = 50 * time.Millisecond
	defaultSize          = 20
	defaultRows          = 18
	defaultCols          = 34
	defaultWallDensity   = 0.25
	defaultWeightDensity = 0.10
	defaultNodes         = 5
	envPrefix            = "STEPVIZ"
)

// Config holds all stepviz settings.
type Config struct {
	Run     RunConfig     `mapstructure:"run"`
	AStar   AStarConfig   `mapstructure:"astar"`
	Graph   GraphConfig   `mapstructure:"graph"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// RunConfig holds settings shared by every algorithm.
type RunConfig struct {
	Speed time.Duration `mapstructure:"speed"`
	// Seed of 0 means seed from the clock.
	Seed int64 `mapstructure:"seed"`
	Size int   `mapstructure:"size"`
	// Heap selects heap-backed queues for A* and Dijkstra.
	Heap bool `mapstructure:"heap"`
}

// AStarConfig holds grid search settings.
type AStarConfig struct {
	Heuristic     string  `mapstructure:"heuristic"`
	Diagonal      bool    `mapstructure:"diagonal"`
	WeightCost    float64 `mapstructure:"weight_cost"`
	Rows          int     `mapstructure:"rows"`
	Cols          int     `mapstructure:"cols"`
	WallDensity   float64 `mapstructure:"wall_density"`
	WeightDensity float64 `mapstructure:"weight_density"`
}

// GraphConfig holds settings for graph algorithms.
type GraphConfig struct {
	Nodes      int  `mapstructure:"nodes"`
	Start      int  `mapstructure:"start"`
	CheckSteps bool `mapstructure:"check_steps"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig holds the Prometheus listener address; empty disables it.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Load reads configuration. An empty path searches for .stepviz.yaml in the
// working directory and $HOME; a missing file is not an error then.
// An explicit path must exist.
func Load(path string) (*Config, error) {
	return LoadWith(New(), path)
}

// LoadWith is Load on a caller-prepared viper instance, typically one
// returned by New with command-line flags already bound.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".stepviz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	return Decode(v)
}

// New returns a viper instance with defaults and environment binding, ready
// for flag binding or a config file.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// Decode unmarshals and validates the settings held by v.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("run.speed", defaultSpeed)
	v.SetDefault("run.seed", 0)
	v.SetDefault("run.size", defaultSize)
	v.SetDefault("run.heap", false)

	v.SetDefault("astar.heuristic", astar.Manhattan.String())
	v.SetDefault("astar.diagonal", false)
	v.SetDefault("astar.weight_cost", astar.DefaultWeightCost)
	v.SetDefault("astar.rows", defaultRows)
	v.SetDefault("astar.cols", defaultCols)
	v.SetDefault("astar.wall_density", defaultWallDensity)
	v.SetDefault("astar.weight_density", defaultWeightDensity)

	v.SetDefault("graph.nodes", defaultNodes)
	v.SetDefault("graph.start", 0)
	v.SetDefault("graph.check_steps", true)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")

	v.SetDefault("metrics.addr", "")
}

func validate(cfg *Config) error {
	if cfg.Run.Speed < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSpeed, cfg.Run.Speed)
	}
	if cfg.Run.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, cfg.Run.Size)
	}
	if _, err := astar.ParseHeuristic(cfg.AStar.Heuristic); err != nil {
		return err
	}
	if wc := cfg.AStar.WeightCost; math.IsNaN(wc) || math.IsInf(wc, 0) || wc < 1 {
		return fmt.Errorf("%w: %g", ErrInvalidWeightCost, cfg.AStar.WeightCost)
	}
	if cfg.AStar.Rows <= 0 || cfg.AStar.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, cfg.AStar.Rows, cfg.AStar.Cols)
	}
	for _, d := range []float64{cfg.AStar.WallDensity, cfg.AStar.WeightDensity} {
		if math.IsNaN(d) || d < 0 || d >= 1 {
			return fmt.Errorf("%w: %g", ErrInvalidDensity, d)
		}
	}
	if cfg.Graph.Nodes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidNodes, cfg.Graph.Nodes)
	}
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Logging.Level)
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.Logging.Format)
	}

	return nil
}
