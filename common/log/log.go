// Package log wraps zap's sugared logger behind a small interface so the
// rest of the code never depends on zap directly.
package log

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// log is the implementation of Logger
type log struct {
	*zap.SugaredLogger
}

// Logger is an interface that can log to different levels.
type Logger interface {
	Info(keyvals ...interface{})
	Debug(keyvals ...interface{})
	Warn(keyvals ...interface{})
	Error(keyvals ...interface{})
	Fatal(keyvals ...interface{})
	Infow(msg string, keyvals ...interface{})
	Debugw(msg string, keyvals ...interface{})
	Warnw(msg string, keyvals ...interface{})
	Errorw(msg string, keyvals ...interface{})
	Fatalw(msg string, keyvals ...interface{})
	With(args ...interface{}) Logger
	Named(s string) Logger
}

func (l *log) With(args ...interface{}) Logger {
	return &log{l.SugaredLogger.With(args...)}
}

func (l *log) Named(s string) Logger {
	return &log{l.SugaredLogger.Named(s)}
}

const (
	InfoLevel  = int(zapcore.InfoLevel)
	DebugLevel = int(zapcore.DebugLevel)
	ErrorLevel = int(zapcore.ErrorLevel)
	FatalLevel = int(zapcore.FatalLevel)
	WarnLevel  = int(zapcore.WarnLevel)
)

// DefaultLevel is the default level where statements are logged. Change the
// value of this variable before init() to change the level of the default
// logger.
var DefaultLevel = InfoLevel

//nolint:gochecknoinits // We do want to overwrite the default log level here
func init() {
	debugEnv, isDebug := os.LookupEnv("SIGNCRYPT_TEST_LOGS")
	if isDebug && debugEnv == "DEBUG" {
		DefaultLevel = DebugLevel
	}
}

var isDefaultLoggerSet sync.Once

// DefaultLogger is the default logger that only logs at the `DefaultLevel`.
func DefaultLogger() Logger {
	isDefaultLoggerSet.Do(func() {
		zap.ReplaceGlobals(newZapLogger(nil, getConsoleEncoder(), DefaultLevel))
	})

	return &log{zap.S()}
}

// New returns a logger that prints statements at the given level.
func New(output zapcore.WriteSyncer, level int, isJSON bool) Logger {
	encoder := getConsoleEncoder()
	if isJSON {
		encoder = getJSONEncoder()
	}
	l := newZapLogger(output, encoder, level)
	return &log{l.Sugar()}
}

func newZapLogger(output zapcore.WriteSyncer, encoder zapcore.Encoder, level int) *zap.Logger {
	if output == nil {
		output = os.Stdout
	}

	core := zapcore.NewCore(encoder, output, zapcore.Level(level))
	return zap.New(core, zap.WithCaller(true))
}

func getJSONEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()

	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapcore.NewJSONEncoder(encoderConfig)
}

func getConsoleEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()

	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapcore.NewConsoleEncoder(encoderConfig)
}
