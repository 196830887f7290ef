package logger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors/errbase"
)

// errorAttrReplacer renders error values as their message so every handler
// prints the same text regardless of the error's concrete type.
func errorAttrReplacer(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key != ErrorKey {
		return attr
	}
	if err, ok := attr.Value.Any().(error); ok && err != nil {
		return slog.String(ErrorKey, err.Error())
	}
	return attr
}

// middlewareErrorStackTrace attaches the verbose error and its stack trace to
// records carrying an error attribute.
func middlewareErrorStackTrace() middleware {
	return func(next handleFunc) handleFunc {
		return func(ctx context.Context, rec slog.Record) error {
			rec.Attrs(func(attr slog.Attr) bool {
				if attr.Key != ErrorKey {
					return true
				}
				err, ok := attr.Value.Any().(error)
				if !ok || err == nil {
					return true
				}
				rec.AddAttrs(slog.String(ErrorVerboseKey, fmt.Sprintf("%+v", err)))
				if x, ok := err.(errbase.StackTraceProvider); ok {
					rec.AddAttrs(slog.Any(ErrorStackTraceKey, traceLines(x.StackTrace())))
				}
				return false
			})
			return next(ctx, rec)
		}
	}
}
