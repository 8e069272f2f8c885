// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/dlist/trace"
)

const (
	simulatorFolder = ".dlist-simulator"
	configName      = "config"

	logLevelKey     = "log-level"
	displayLevelKey = "display-level"
	logDirKey       = "log-dir"
	parallelKey     = "parallel"
	traceEnabledKey = "trace.enabled"
	traceEndKey     = "trace.endpoint"
	traceRateKey    = "trace.sampleRate"
)

var errInvalidParallel = errors.New("parallel must be positive")

// Config is the simulator configuration. Values are read from the config
// file and overridden by command line flags.
type Config struct {
	LogLevel     string       `mapstructure:"log-level" yaml:"log-level"`
	DisplayLevel string       `mapstructure:"display-level" yaml:"display-level"`
	LogDir       string       `mapstructure:"log-dir" yaml:"log-dir"`
	Parallel     int          `mapstructure:"parallel" yaml:"parallel"`
	Trace        trace.Config `mapstructure:"trace" yaml:"trace"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(logLevelKey, logging.Info.String())
	v.SetDefault(displayLevelKey, logging.Info.String())
	v.SetDefault(logDirKey, "")
	v.SetDefault(parallelKey, 4)
	v.SetDefault(traceEnabledKey, false)
	v.SetDefault(traceEndKey, trace.DefaultEndpoint)
	v.SetDefault(traceRateKey, 1.0)
}

// loadConfig reads [path], or the default config file in the home directory
// when [path] is empty, and applies the flags that were set.
func loadConfig(v *viper.Viper, path string, flags *pflag.FlagSet) (Config, error) {
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		v.SetConfigName(configName)
		v.AddConfigPath(filepath.Join(homeDir, simulatorFolder))
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	for key, flag := range map[string]string{
		logLevelKey:     "log-level",
		displayLevelKey: "display-level",
		logDirKey:       "log-dir",
		parallelKey:     "parallel",
		traceEnabledKey: "trace",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, err
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return config, config.verify()
}

func (c *Config) verify() error {
	if _, err := logging.ToLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ToLevel(c.DisplayLevel); err != nil {
		return err
	}
	if c.Parallel <= 0 {
		return fmt.Errorf("%w: %d", errInvalidParallel, c.Parallel)
	}
	return nil
}

func (c *Config) loggingConfig() (logging.Config, error) {
	config := logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:   8,
			MaxFiles:  4,
			MaxAge:    7,
			Directory: c.LogDir,
		},
		LogFormat: logging.JSON,
	}
	var err error
	config.LogLevel, err = logging.ToLevel(c.LogLevel)
	if err != nil {
		return logging.Config{}, err
	}
	config.DisplayLevel, err = logging.ToLevel(c.DisplayLevel)
	if err != nil {
		return logging.Config{}, err
	}
	return config, nil
}
