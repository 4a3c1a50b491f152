// Package logsvc provides the core.Logger implementations: a zap logger writing to the
// console and an optional rotated JSON file, and a Rollbar logger reporting to Rollbar.
package logsvc

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/trezcool/agenda/core"
	"github.com/trezcool/agenda/core/profile"
)

type ZapLogger struct {
	sugar *zap.SugaredLogger
	file  io.Closer
}

var _ core.Logger = (*ZapLogger)(nil) // interface compliance check

type zapOptions struct {
	level   zapcore.Level
	file    string
	console zapcore.WriteSyncer
}

type ZapOption func(*zapOptions)

// WithLevel sets the minimum level, eg. "debug" or "warn". Unknown levels are ignored.
func WithLevel(level string) ZapOption {
	return func(o *zapOptions) {
		if lvl, err := zapcore.ParseLevel(level); err == nil {
			o.level = lvl
		}
	}
}

// WithFile also writes JSON lines to `filename`, rotated by size.
func WithFile(filename string) ZapOption {
	return func(o *zapOptions) { o.file = filename }
}

// WithConsole replaces stdout as the console output.
func WithConsole(w io.Writer) ZapOption {
	return func(o *zapOptions) { o.console = zapcore.AddSync(w) }
}

func NewZapLogger(opts ...ZapOption) *ZapLogger {
	o := zapOptions{level: zapcore.InfoLevel, console: zapcore.AddSync(os.Stdout)}
	for _, opt := range opts {
		opt(&o)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), o.console, o.level),
	}
	l := &ZapLogger{}
	if o.file != "" {
		file := &lumberjack.Logger{
			Filename:   o.file,
			MaxSize:    100, // MB
			MaxBackups: 30,
			MaxAge:     90, // days
		}
		l.file = file
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(file), o.level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zap.ErrorLevel))
	l.sugar = logger.Sugar()
	return l
}

// Fields converts logger args to zap key/value pairs.
// expected fmt: error, map[string]interface{}, profile.UserProfile, key, value, ...
func Fields(args []interface{}) []interface{} {
	kvs := make([]interface{}, 0, len(args)*2)
	var nErr, nArg int
	for i := 0; i < len(args); i++ {
		switch arg := args[i].(type) {
		case nil:
		case error:
			key := "error"
			if nErr > 0 {
				key = fmt.Sprintf("error%d", nErr)
			}
			nErr++
			kvs = append(kvs, key, arg.Error())
		case map[string]interface{}:
			for k, v := range arg {
				kvs = append(kvs, k, v)
			}
		case profile.UserProfile:
			kvs = append(kvs, "user", arg.Email)
		case string:
			if i+1 < len(args) {
				kvs = append(kvs, arg, args[i+1])
				i++
				continue
			}
			kvs = append(kvs, fmt.Sprintf("arg%d", nArg), arg)
			nArg++
		default:
			kvs = append(kvs, fmt.Sprintf("arg%d", nArg), arg)
			nArg++
		}
	}
	return kvs
}

func (l *ZapLogger) Debug(msg string, args ...interface{}) { l.sugar.Debugw(msg, Fields(args)...) }
func (l *ZapLogger) Info(msg string, args ...interface{})  { l.sugar.Infow(msg, Fields(args)...) }
func (l *ZapLogger) Warn(msg string, args ...interface{})  { l.sugar.Warnw(msg, Fields(args)...) }
func (l *ZapLogger) Error(msg string, args ...interface{}) { l.sugar.Errorw(msg, Fields(args)...) }
func (l *ZapLogger) Fatal(msg string, args ...interface{}) { l.sugar.Fatalw(msg, Fields(args)...) }

// Close flushes buffered entries and closes the log file, if any.
func (l *ZapLogger) Close() error {
	_ = l.sugar.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
