package settings

import "go.uber.org/zap"

type zapLogger struct {
	*zap.SugaredLogger
}

// NewZapLogger adapts a zap logger to the Logger interface.
// A nil logger yields a no-op logger.
func NewZapLogger(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &zapLogger{l.Sugar()}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return NewZapLogger(nil)
}

func (z *zapLogger) Debug(msg string, fields ...interface{}) {
	z.SugaredLogger.Debugw(msg, fields...)
}

func (z *zapLogger) Info(msg string, fields ...interface{}) {
	z.SugaredLogger.Infow(msg, fields...)
}

func (z *zapLogger) Warn(msg string, fields ...interface{}) {
	z.SugaredLogger.Warnw(msg, fields...)
}

func (z *zapLogger) Error(msg string, fields ...interface{}) {
	z.SugaredLogger.Errorw(msg, fields...)
}
