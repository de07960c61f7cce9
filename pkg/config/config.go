package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds the runtime settings of the importer.
type Config struct {
	DataDir         string  `mapstructure:"data_dir"`
	DBPath          string  `mapstructure:"db_path"`
	ArchiveDir      string  `mapstructure:"archive_dir"`
	UnclassifiedDir string  `mapstructure:"unclassified_dir"`
	MinConfidence   float64 `mapstructure:"min_confidence"`
	Currency        string  `mapstructure:"currency"`
	RulesFile       string  `mapstructure:"rules_file"`
}

// Build loads configuration from an optional yaml file, environment
// variables (PFIMPORT_ prefix, after loading .env), and flag overrides, in
// increasing precedence. Paths left unset derive from data_dir.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault("data_dir", "data")
	v.SetDefault("min_confidence", 0.5)
	v.SetDefault("currency", "USD")

	v.SetEnvPrefix("pfimport")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("binding flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "db", "finance.sqlite")
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = filepath.Join(cfg.DataDir, "archive")
	}
	if cfg.UnclassifiedDir == "" {
		cfg.UnclassifiedDir = filepath.Join(cfg.DataDir, "unclassified")
	}
	if cfg.MinConfidence < 0 || cfg.MinConfidence > 1 {
		return nil, fmt.Errorf("min_confidence must be within [0, 1], got %v", cfg.MinConfidence)
	}
	return &cfg, nil
}
