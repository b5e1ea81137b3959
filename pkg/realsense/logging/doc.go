// Package logging provides a minimal logging facade for the realsense
// wrapper.
//
// The Logger interface wraps a subset of the standard library's log/slog
// functionality:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// The default implementation is slog-backed:
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// Loggers are accepted by the streaming helpers for observability:
//
//	logger := logging.New(nil)
//	logger.Info(ctx, "pipeline started", "serial", dev.SerialNumber(), "streams", 2)
package logging
