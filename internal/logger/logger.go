// Package logger provides the application's structured logger.
package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// New builds a console logger writing to w at the given level
// (debug, info, warn, error).
func New(level string, w io.Writer) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return &Logger{SugaredLogger: zap.New(newConsoleCore(lvl, w)).Sugar()}, nil
}

func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func newConsoleCore(level zapcore.Level, w io.Writer) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := zapcore.NewConsoleEncoder(cfg)
	ws := zapcore.Lock(zapcore.AddSync(w))
	return zapcore.NewCore(encoder, ws, zap.NewAtomicLevelAt(level))
}
