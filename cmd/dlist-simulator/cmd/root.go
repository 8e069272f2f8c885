// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ava-labs/dlist/consts"
	"github.com/ava-labs/dlist/metrics"
	"github.com/ava-labs/dlist/utils"

	dtrace "github.com/ava-labs/dlist/trace"
)

const metricsNamespace = "dlist"

type Simulator struct {
	configPath string
	config     Config

	logs     *logFactory
	log      logging.Logger
	tracer   trace.Tracer
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

func NewSimulator() *Simulator {
	return &Simulator{
		log:    logging.NoLog{},
		tracer: dtrace.Noop(consts.Name),
	}
}

// Execute runs the command line and releases the loggers and the tracer once
// the command returns.
func (s *Simulator) Execute() error {
	defer s.Close()
	return s.NewRootCmd().Execute()
}

func (s *Simulator) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   consts.Name,
		Short: "Interactive and scripted driver for doubly linked lists",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.Init(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cobra.EnablePrefixMatching = true
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.DisableAutoGenTag = true
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	flags := cmd.PersistentFlags()
	flags.StringVar(&s.configPath, "config", "", "config file (default $HOME/"+simulatorFolder+"/"+configName+".yaml)")
	flags.String("log-level", "info", "log level of the log file")
	flags.String("display-level", "info", "log level printed to stderr")
	flags.String("log-dir", "", "directory for rotated log files, disabled when empty")
	flags.Bool("trace", false, "export spans to zipkin")

	cmd.AddCommand(
		newRunCmd(s),
		newReplCmd(s),
	)
	return cmd
}

// Init loads the configuration and sets up logging, tracing and metrics.
func (s *Simulator) Init(flags *pflag.FlagSet) error {
	config, err := loadConfig(viper.New(), s.configPath, flags)
	if err != nil {
		return err
	}
	s.config = config

	if config.LogDir != "" {
		config.LogDir, err = utils.InitSubDirectory(config.LogDir, "logs")
		if err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	loggingConfig, err := config.loggingConfig()
	if err != nil {
		return err
	}
	s.logs = newLogFactory(loggingConfig)
	s.log, err = s.logs.Make("simulator")
	if err != nil {
		return err
	}

	traceConfig := config.Trace
	traceConfig.AppName = consts.Name
	traceConfig.Version = consts.Version.String()
	s.tracer, err = dtrace.New(&traceConfig)
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}

	s.registry = prometheus.NewRegistry()
	s.metrics, err = metrics.New(metricsNamespace, s.registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	s.log.Info("simulator initialized",
		zap.String("version", consts.Version.String()),
		zap.String("logDir", config.LogDir),
		zap.Bool("trace", config.Trace.Enabled),
	)
	return nil
}

func (s *Simulator) Close() {
	if s.tracer != nil {
		if err := s.tracer.Close(); err != nil {
			s.log.Warn("failed to close tracer", zap.Error(err))
		}
	}
	if s.logs != nil {
		s.logs.Close()
		s.logs = nil
	}
}

// newInterpreter returns an interpreter reporting to the simulator metrics.
func (s *Simulator) newInterpreter() *Interpreter {
	if s.metrics == nil {
		return NewInterpreter(s.log, s.tracer, nil)
	}
	return NewInterpreter(s.log, s.tracer, s.metrics)
}
