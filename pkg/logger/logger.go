// Package logger provides the structured, levelled logger for the
// application, built on log/slog.
//
// A per-request logger pre-tagged with the request_id is injected into
// the request context by the Logger middleware; retrieve it with
// WithCtx so every log line from a handler is correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("report built", "order_count", n)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/moyashi0060/kittchen-POS-app/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler
	switch config.AppEnv() {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

type ctxKey struct{}

// WithCtx returns the request-scoped logger stored in ctx, or the base
// logger when none was injected.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// Inject stores a request-scoped logger in ctx. Called by the Logger
// middleware; application code normally only reads via WithCtx.
func Inject(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
