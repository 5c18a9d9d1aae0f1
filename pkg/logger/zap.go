// Пакет logger — zap за интерфейсом ports.Logger: остальной код сервиса
// зависит от трёх printf-методов, а не от конкретного логгера.
package logger

import (
	"context"

	"go.uber.org/zap"
)

// ZapLogger — обёртка над zap.SugaredLogger с контекстными методами.
type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger — конструктор; prod-режим включает JSON-вывод и ISO-таймстемпы.
// Возвращает также функцию сброса буферов (Sync) для вызова при остановке.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	build := zap.NewDevelopment
	if isProd {
		build = zap.NewProduction
	}

	base, err := build()
	if err != nil {
		return nil, nil, err
	}

	l := &ZapLogger{base: base, sugar: base.Sugar()}
	return l, base.Sync, nil
}

// Контекст пока не используется: request_id в строку кладёт HTTP-middleware,
// а trace_id доступен через ctxmeta при сборке с тегом otel.

func (z *ZapLogger) Infof(_ context.Context, format string, args ...any) {
	z.sugar.Infof(format, args...)
}

func (z *ZapLogger) Warnf(_ context.Context, format string, args ...any) {
	z.sugar.Warnf(format, args...)
}

func (z *ZapLogger) Errorf(_ context.Context, format string, args ...any) {
	z.sugar.Errorf(format, args...)
}
