package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/drills/internal/adapters/recordyaml"
	"github.com/AntonioJCosta/drills/internal/core/ports"
	"github.com/AntonioJCosta/drills/internal/core/services/drillrunner"
	"github.com/AntonioJCosta/drills/internal/handlers/cli"
	"github.com/AntonioJCosta/drills/internal/repositories/settings"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is set at build time
var Version = "dev"

// logger is created once flags are parsed and flushed on exit.
var logger = zap.NewNop()

func main() {
	// settingsProvider can be nil if the home directory cannot be resolved.
	settingsProvider, err := settings.NewFileSettingsProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not locate settings file: %v. Continuing with defaults.\n", err)
		settingsProvider = nil
	}

	rootCmd := cli.NewRootCommand(Version, settingsProvider, newDrillService)

	err = rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newDrillService(opts cli.Options) (ports.DrillService, error) {
	l, err := newLogger(opts.LogLevel)
	if err != nil {
		return nil, err
	}
	logger = l

	var source ports.RecordSource
	if opts.RecordsFile != "" {
		source, err = recordyaml.NewYAMLProvider(opts.RecordsFile)
		if err != nil {
			return nil, fmt.Errorf("initializing record source: %w", err)
		}
	}

	logger.Debug("drill service configured",
		zap.String("method", string(opts.Method)),
		zap.String("records_file", opts.RecordsFile))
	return drillrunner.NewService(opts.Method, source, logger), nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.DisableStacktrace = lvl > zapcore.DebugLevel
	return config.Build()
}
