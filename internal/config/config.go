package config

import (
	"errors"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vancomm/minefield/internal/mines"
)

type Config struct {
	Development    bool     `mapstructure:"development"`
	Addr           string   `mapstructure:"addr"`
	BasePath       string   `mapstructure:"base_path"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	LogFile        string   `mapstructure:"log_file"`

	Width        int    `mapstructure:"width"`
	Height       int    `mapstructure:"height"`
	MineCount    int    `mapstructure:"mine_count"`
	CascadeDepth int    `mapstructure:"cascade_depth"`
	Seed         uint64 `mapstructure:"seed"`
}

const EnvPrefix = "MINEFIELD"

var defaults = map[string]any{
	"development":     false,
	"addr":            "127.0.0.1:8080",
	"base_path":       "",
	"allowed_origins": []string{},
	"log_file":        "",
	"width":           9,
	"height":          9,
	"mine_count":      10,
	"cascade_depth":   mines.DefaultCascadeDepth,
	"seed":            0,
}

// flag name -> config key
var flagKeys = map[string]string{
	"development":   "development",
	"addr":          "addr",
	"log-file":      "log_file",
	"width":         "width",
	"height":        "height",
	"mines":         "mine_count",
	"cascade-depth": "cascade_depth",
	"seed":          "seed",
}

// Flags declares the command line flags understood by [Load].
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file path")
	fs.Bool("development", false, "human readable debug logging")
	fs.String("addr", "127.0.0.1:8080", "listen address")
	fs.String("log-file", "", "also write logs to this file, rotated")
	fs.Int("width", 9, "field width")
	fs.Int("height", 9, "field height")
	fs.Int("mines", 10, "number of mines")
	fs.Int("cascade-depth", mines.DefaultCascadeDepth, "flood reveal depth, -1 for unbounded")
	fs.Uint64("seed", 0, "mine placement seed, 0 for random")
	return fs
}

// Load merges defaults, an optional config file, MINEFIELD_* environment
// variables and flags, in increasing order of precedence.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("unable to bind flag %s: %w", name, err)
			}
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	return c.GameParams().Validate()
}

func (c Config) GameParams() mines.GameParams {
	return mines.GameParams{
		Width:     c.Width,
		Height:    c.Height,
		MineCount: c.MineCount,
	}
}

func (c Config) FieldOptions(logger *slog.Logger) []mines.Option {
	return []mines.Option{
		mines.WithCascadeDepth(c.CascadeDepth),
		mines.WithLogger(logger),
	}
}

// Rand returns a PCG source seeded with Seed, or with a random seed when
// Seed is zero.
func (c Config) Rand() *rand.Rand {
	if c.Seed != 0 {
		return rand.New(rand.NewPCG(c.Seed, c.Seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// [Config] implements [slog.LogValuer]
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("development", c.Development),
		slog.String("addr", c.Addr),
		slog.String("base_path", c.BasePath),
		slog.Any("allowed_origins", c.AllowedOrigins),
		slog.String("log_file", c.LogFile),
		slog.String("params", c.GameParams().Seed()),
		slog.Int("cascade_depth", c.CascadeDepth),
		slog.Uint64("seed", c.Seed),
	)
}
