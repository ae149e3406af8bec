// Package logging provides structured diagnostic logging using uber/zap.
//
// Diagnostics go to stderr so that stdout carries only the report.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger.
type Logger struct {
	*zap.Logger
}

// Config defines logger configuration.
type Config struct {
	Level       string    // "debug", "info", "warn", "error"
	Development bool      // console encoding with caller info
	Output      io.Writer // defaults to os.Stderr
}

// New creates a logger writing to cfg.Output at cfg.Level.
func New(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	core := zapcore.NewCore(newEncoder(cfg.Development), zapcore.Lock(zapcore.AddSync(out)), level)
	if !cfg.Development {
		return &Logger{Logger: zap.New(core)}, nil
	}
	return &Logger{Logger: zap.New(core, zap.Development(), zap.AddCaller())}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

func newEncoder(development bool) zapcore.Encoder {
	if development {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(ec)
	}

	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.MessageKey = "message"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(ec)
}
