// Пакет ctxmeta — метаданные запроса в context.Context (request_id, а в
// сборке с тегом otel — ещё и trace/span id). HTTP-слой и логгер зависят
// от этого маленького пакета, но не друг от друга.
package ctxmeta

import "context"

// Свой тип ключа, чтобы не пересекаться со значениями других пакетов.
type ctxKey struct{}

var requestIDKey ctxKey

// WithRequestID — положить request_id в контекст; пустой id не сохраняем.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext — достать request_id; (id, true) если он был установлен.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(requestIDKey).(string)
	return v, ok && v != ""
}
