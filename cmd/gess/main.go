package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/asa-holland/gess-strategy-game/internal/config"
	"github.com/asa-holland/gess-strategy-game/internal/game"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	scriptPath = flag.String("script", "", "file of moves to play, one per line (default stdin)")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting gess",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	status, err := run(*scriptPath, cfg, logger)
	if err != nil {
		logger.Error("script failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("gess finished", zap.String("status", status.String()))
}

// run plays the script at path, or stdin when path is empty. The script file
// is closed before run returns so main can exit without losing it.
func run(path string, cfg *config.Config, logger *zap.Logger) (game.Status, error) {
	var in io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return game.StatusInProgress, fmt.Errorf("open script %s: %w", path, err)
		}
		defer f.Close()
		in = f
	}
	return runScript(in, os.Stdout, cfg, logger)
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
