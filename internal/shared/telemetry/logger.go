package telemetry

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger *zap.SugaredLogger
)

// Init builds the process-wide logger. Safe to call more than once; the
// last call wins. When debug is set, log output switches to the console
// encoder at debug level.
func Init(debug bool) error {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.LevelKey = "level"

	built, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		return err
	}
	mu.Lock()
	logger = built.Sugar()
	mu.Unlock()
	return nil
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	base().Infow(msg, flatten(fields)...)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	base().Errorw(msg, flatten(fields)...)
}

func base() *zap.SugaredLogger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}
	if err := Init(false); err != nil {
		return zap.NewNop().Sugar()
	}
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func flatten(fields map[string]any) []any {
	kv := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return kv
}
