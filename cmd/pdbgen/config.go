package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/patterndb/selection"
)

// EnvPrefix prefixes every environment override, e.g. PDBGEN_MAX_PATTERNS.
const EnvPrefix = "PDBGEN"

// defaultMaxPatternSize bounds patterns to pairs of variables unless the
// user asks for more.
const defaultMaxPatternSize = 2

// Config holds everything the select command needs. Values come from, in
// increasing priority: defaults, the config file, PDBGEN_* environment
// variables and explicitly set flags.
type Config struct {
	Task        string `mapstructure:"task" validate:"required"`
	Output      string `mapstructure:"output"`
	MetricsFile string `mapstructure:"metrics_file"`

	MaxPatternSize    int           `mapstructure:"max_pattern_size" validate:"gte=1"`
	MaxPDBSize        int           `mapstructure:"max_pdb_size" validate:"gte=1"`
	MaxCollectionSize int           `mapstructure:"max_collection_size" validate:"gte=1"`
	MaxPatterns       int           `mapstructure:"max_patterns" validate:"gte=1"`
	MaxTime           time.Duration `mapstructure:"max_time" validate:"gte=0"`

	Precheck         bool   `mapstructure:"precheck"`
	Debug            bool   `mapstructure:"debug"`
	IncludeDistances bool   `mapstructure:"include_distances"`
	LogLevel         string `mapstructure:"log_level" validate:"oneof=debug info warn error disabled"`
}

var configValidate = validator.New()

// setDefaults registers every key, so that AutomaticEnv can resolve it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("task", "")
	v.SetDefault("output", "")
	v.SetDefault("metrics_file", "")
	v.SetDefault("max_pattern_size", defaultMaxPatternSize)
	v.SetDefault("max_pdb_size", selection.Unbounded)
	v.SetDefault("max_collection_size", selection.Unbounded)
	v.SetDefault("max_patterns", selection.Unbounded)
	v.SetDefault("max_time", selection.UnboundedTime)
	v.SetDefault("precheck", true)
	v.SetDefault("debug", false)
	v.SetDefault("include_distances", false)
	v.SetDefault("log_level", "info")
}

// LoadConfig reads configPath (optional; a missing default file is not an
// error) and the environment into a validated Config.
func LoadConfig(v *viper.Viper, configPath string) (*Config, error) {
	setDefaults(v)
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("pdbgen")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := configValidate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// SelectionOptions translates the budgets into selection options.
func (c *Config) SelectionOptions() []selection.Option {
	return []selection.Option{
		selection.WithMaxPatternSize(c.MaxPatternSize),
		selection.WithMaxPDBSize(c.MaxPDBSize),
		selection.WithMaxCollectionSize(c.MaxCollectionSize),
		selection.WithMaxPatterns(c.MaxPatterns),
		selection.WithMaxTime(c.MaxTime),
		selection.WithPrecheck(c.Precheck),
		selection.WithDebug(c.Debug),
	}
}
