// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logFactory builds loggers that write to stderr and, when a directory is
// configured, to a rotated file. Unlike the avalanchego factory the console
// output can be muted, which keeps stdout reserved for responses.
type logFactory struct {
	config logging.Config
	lock   sync.Mutex

	// Logger name --> the logger.
	loggers map[string]logWrapper
}

type logWrapper struct {
	logger       logging.Logger
	displayLevel zap.AtomicLevel
	logLevel     zap.AtomicLevel
}

func newLogFactory(config logging.Config) *logFactory {
	return &logFactory{
		config:  config,
		loggers: make(map[string]logWrapper),
	}
}

// Assumes [f.lock] is held
func (f *logFactory) makeLogger(config logging.Config) (logging.Logger, error) {
	if _, ok := f.loggers[config.LoggerName]; ok {
		return nil, fmt.Errorf("logger with name %q already exists", config.LoggerName)
	}

	var consoleWriter io.WriteCloser = nopCloser{os.Stderr}
	if config.DisableWriterDisplaying {
		consoleWriter = nopCloser{io.Discard}
	}
	consoleCore := logging.NewWrappedCore(config.DisplayLevel, consoleWriter, logging.Colors.ConsoleEncoder())
	consoleCore.WriterDisabled = config.DisableWriterDisplaying
	cores := []logging.WrappedCore{consoleCore}

	w := logWrapper{displayLevel: consoleCore.AtomicLevel}
	if config.Directory != "" {
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, config.LoggerName+".log"),
			MaxSize:    config.MaxSize,  // megabytes
			MaxAge:     config.MaxAge,   // days
			MaxBackups: config.MaxFiles, // files
			Compress:   config.Compress,
		}
		fileCore := logging.NewWrappedCore(config.LogLevel, rw, config.LogFormat.FileEncoder())
		cores = append(cores, fileCore)
		w.logLevel = fileCore.AtomicLevel
	}

	w.logger = logging.NewLogger(config.LogFormat.WrapPrefix(config.MsgPrefix), cores...)
	f.loggers[config.LoggerName] = w
	return w.logger, nil
}

func (f *logFactory) Make(name string) (logging.Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	config := f.config
	config.LoggerName = name
	return f.makeLogger(config)
}

func (f *logFactory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, lw := range f.loggers {
		lw.logger.Stop()
	}
	f.loggers = nil
}

// nopCloser keeps stderr open when the loggers are stopped.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
