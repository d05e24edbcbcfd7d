package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	With(keysAndValues ...interface{}) Logger
	Sync() error
}

// Options define nível e formato de saída do logger
type Options struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// ZapLogger é a implementação de Logger sobre o zap
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger cria uma nova instância de Logger
func NewLogger(opts Options) (Logger, error) {
	encoding := strings.ToLower(opts.Encoding)
	if encoding != "json" {
		encoding = "console"
	}

	cfg := zap.NewProductionConfig()
	if encoding == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Encoding = encoding
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(opts.Level))
	cfg.DisableCaller = opts.DisableCaller
	cfg.DisableStacktrace = opts.DisableStacktrace
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: base.Sugar()}, nil
}

// NewNop retorna um logger que descarta tudo
func NewNop() Logger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Info registra uma mensagem de informação
func (l *ZapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Error registra uma mensagem de erro
func (l *ZapLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Debug registra uma mensagem de debug
func (l *ZapLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Warn registra uma mensagem de aviso
func (l *ZapLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}

// With retorna um logger filho com campos fixos
func (l *ZapLogger) With(keysAndValues ...interface{}) Logger {
	return &ZapLogger{sugar: l.sugar.With(keysAndValues...)}
}

// Sync descarrega buffers pendentes
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}
