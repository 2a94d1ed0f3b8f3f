package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

// InitLogger builds the process-wide logger. LOG_FORMAT selects text or JSON
// output; JSON records carry trace_id/span_id when a span is active. When
// otelEnabled is true, records are additionally exported through the otelslog
// bridge to the globally configured logger provider.
func InitLogger(otelEnabled bool) *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	var stdout slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		stdout = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		stdout = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	var handler slog.Handler = NewTraceContextHandler(stdout)
	if otelEnabled {
		handler = NewMultiHandler(handler)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "otel_enabled", otelEnabled)

	return Logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
