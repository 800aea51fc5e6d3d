package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/user/idemfs/pkg/ports"
)

// ZapLogger writes structured JSON log lines through zap.
// Messages are not translated so that log processors see stable keys.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZap creates a JSON logger writing to w at the given level.
func NewZap(level ports.LogLevel, w io.Writer) *ZapLogger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(enc),
		zapcore.AddSync(w),
		zapLevel(level),
	)
	return &ZapLogger{sugar: zap.New(core).Sugar()}
}

// NewZapFromLogger wraps an existing zap logger.
func NewZapFromLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: l.Sugar()}
}

func (l *ZapLogger) Debug(msg string, args ...interface{}) {
	l.sugar.Debug(format(msg, args))
}

func (l *ZapLogger) Info(msg string, args ...interface{}) {
	l.sugar.Info(format(msg, args))
}

func (l *ZapLogger) Warn(msg string, args ...interface{}) {
	l.sugar.Warn(format(msg, args))
}

func (l *ZapLogger) Error(msg string, args ...interface{}) {
	l.sugar.Error(format(msg, args))
}

// WithComponent returns a logger whose entries carry the component as the
// zap logger name.
func (l *ZapLogger) WithComponent(component string) ports.Logger {
	return &ZapLogger{sugar: l.sugar.Named(component)}
}

// Sync flushes any buffered entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

func format(msg string, args []interface{}) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// zapLevel maps a LogLevel onto a zap level enabler. LevelQuiet disables
// everything below fatal.
func zapLevel(level ports.LogLevel) zapcore.LevelEnabler {
	switch level {
	case ports.LevelDebug:
		return zapcore.DebugLevel
	case ports.LevelInfo:
		return zapcore.InfoLevel
	case ports.LevelWarn:
		return zapcore.WarnLevel
	case ports.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}

var (
	_ ports.Logger = (*ZapLogger)(nil)
	_ ports.Logger = (*ConsoleLogger)(nil)
	_ ports.Logger = (*NoopLogger)(nil)
)
