// Package logger bootstraps the process-wide zap logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide sugared logger. It is a nop until Initialize
// runs, so library code can log without caring whether the CLI has
// configured output yet.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize builds the global logger. jsonOutput selects machine-readable
// production encoding over human-readable console output; verbose lowers
// the level to Debug.
func Initialize(verbose, jsonOutput bool) error {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	var cfg zap.Config
	if jsonOutput {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = zl.Sugar()
	return nil
}

// Sync flushes buffered entries. Safe on the nop logger.
func Sync() {
	_ = Logger.Sync()
}
