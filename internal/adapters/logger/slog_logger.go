package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-xray-sdk-go/xray"
)

type SlogLogger struct {
	logger *slog.Logger
}

// New builds a JSON logger on stdout. LOG_LEVEL selects the minimum level,
// defaulting to info.
func New() *SlogLogger {
	return NewWithWriter(os.Stdout, levelFromEnv())
}

func NewWithWriter(w io.Writer, level slog.Leveler) *SlogLogger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &SlogLogger{logger: slog.New(h)}
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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

func (l *SlogLogger) enrichWithTraceID(ctx context.Context, args []any) []any {
	if ctx == nil {
		return args
	}
	seg := xray.GetSegment(ctx)
	if seg == nil || seg.TraceID == "" {
		return args
	}
	return append(args, "trace_id", seg.TraceID)
}

func (l *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, l.enrichWithTraceID(ctx, args)...)
}

func (l *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, l.enrichWithTraceID(ctx, args)...)
}

func (l *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, l.enrichWithTraceID(ctx, args)...)
}

func (l *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, l.enrichWithTraceID(ctx, args)...)
}
