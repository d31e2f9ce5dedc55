package logging

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AppLogger is the request-scoped application logger: zap for structure,
// otelzap so every line carries the active trace and span ids.
type AppLogger struct {
	Logger      *otelzap.Logger
	serviceName string
}

func New(serviceName string) (*AppLogger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.TimeKey = "timestamp"

	zapLogger, err := config.Build()

	if err != nil {
		return nil, fmt.Errorf("creating zap logger: %w", err)
	}

	return &AppLogger{
		Logger:      otelzap.New(zapLogger),
		serviceName: serviceName,
	}, nil
}

func (l *AppLogger) Sync() error {
	return l.Logger.Sync()
}

func (l *AppLogger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.Logger.Ctx(ctx).Info(msg, l.withService(fields)...)
}

func (l *AppLogger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.Logger.Ctx(ctx).Warn(msg, l.withService(fields)...)
}

func (l *AppLogger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.Logger.Ctx(ctx).Error(msg, l.withService(fields)...)
}

func (l *AppLogger) withService(fields []zap.Field) []zap.Field {
	return append(fields, zap.String("service", l.serviceName))
}
