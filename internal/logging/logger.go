// SPDX-License-Identifier: Unlicense OR MIT

// Package logging builds the logr.Logger used by the polyui tools.
package logging

import (
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to w at the given level: trace,
// debug, info, warn or error. Layout solves log at debug, widget
// allocation at trace.
func New(level string, w io.Writer) (logr.Logger, error) {
	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "trace":
		zapLevel = zapcore.Level(-2)
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info", "":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return logr.Logger{}, errors.Errorf("unknown log level %q (expected trace, debug, info, warn, or error)", level)
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapLevel),
	)
	return zapr.NewLogger(zap.New(core)), nil
}
