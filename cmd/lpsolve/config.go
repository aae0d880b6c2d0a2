// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// envPrefix prefixes every environment override, e.g. LPSOLVE_BACKEND=sparse
// or LPSOLVE_LOG_LEVEL=debug.
const envPrefix = "LPSOLVE"

// Config is the merged result of flags, environment and config file.
type Config struct {
	Backend string    `mapstructure:"backend" validate:"oneof=dense sparse"`
	Bland   bool      `mapstructure:"bland"`
	Verbose bool      `mapstructure:"verbose"`
	Floats  bool      `mapstructure:"floats"`
	Latex   string    `mapstructure:"latex"`
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig configures the structured logger. File enables rotation.
type LogConfig struct {
	Level      string `mapstructure:"level"       validate:"oneof=debug info warn error"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"    validate:"gte=0"` // MB
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge     int    `mapstructure:"max_age"     validate:"gte=0"` // days
	Compress   bool   `mapstructure:"compress"`
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"backend":   "backend",
	"bland":     "bland",
	"verbose":   "verbose",
	"floats":    "floats",
	"latex":     "latex",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// loadConfig parses args and returns the validated configuration with the
// remaining positional arguments. Precedence: flag, environment, config
// file, default.
func loadConfig(args []string, stderr io.Writer) (*Config, []string, error) {
	fs := pflag.NewFlagSet("lpsolve", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: lpsolve [flags] [FILE|-]\n\nFlags:\n%s", fs.FlagUsages())
	}
	configFile := fs.StringP("config", "c", "", "configuration file (toml, yaml or json)")
	fs.String("backend", "dense", "tableau storage: dense or sparse")
	fs.Bool("bland", false, "use Bland's rule (smallest index) instead of the largest coefficient")
	fs.BoolP("verbose", "v", false, "print every intermediate dictionary")
	fs.Bool("floats", false, "with --verbose, also print a float64 view of each tableau")
	fs.String("latex", "", "write every intermediate dictionary to this LaTeX file")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.String("log-file", "", "write JSON logs to this file (rotated) instead of stderr")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("read config error: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("unmarshal config error: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, fs.Args(), nil
}

// newLogger builds a JSON logger on a rotated file when cfg.File is set and a
// text logger on stderr otherwise. The returned closer releases the file.
func newLogger(cfg LogConfig, stderr io.Writer) (*slog.Logger, io.Closer) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(stderr, opts)), io.NopCloser(nil)
	}
	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	return slog.New(slog.NewJSONHandler(file, opts)), file
}
