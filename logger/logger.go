// Package logger builds the zap logger shared by the CLI and library packages.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment names accepted by New.
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// New builds a logger writing to w, normally the process's stderr; stdout is
// left to query output.
//
// "production" yields JSON; anything else yields the development console
// encoder with coloured levels. Both log at warn so a plain run prints only
// scores and per-query messages; verbose lowers the level to debug.
func New(env string, verbose bool, w io.Writer) *zap.Logger {
	var config zap.Config

	if env == EnvProduction {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		config.Level.SetLevel(zap.DebugLevel)
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if config.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(config.EncoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(config.EncoderConfig)
	}

	sink := zapcore.Lock(zapcore.AddSync(w))
	core := zapcore.NewCore(encoder, sink, config.Level)

	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(sink))
}

// Sync flushes buffered entries, ignoring the EINVAL/ENOTTY errors stderr
// returns on some terminals.
func Sync(log *zap.Logger) {
	if log != nil {
		_ = log.Sync()
	}
}
