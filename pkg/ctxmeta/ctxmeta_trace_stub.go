//go:build !otel || gopls

package ctxmeta

import "context"

// Заглушки для сборки без тега `otel`: trace/span недоступны.

func TraceIDFromContext(_ context.Context) (string, bool) { return "", false }

func SpanIDFromContext(_ context.Context) (string, bool) { return "", false }
