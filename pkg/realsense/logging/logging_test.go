package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewDefaultsToSlogDefault(t *testing.T) {
	if New(nil) == nil {
		t.Fatal("New(nil) returned nil")
	}
}

func TestLoggerWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := New(slog.New(handler))

	ctx := context.Background()
	logger.Debug(ctx, "probing", "serial", "123")
	logger.Info(ctx, "pipeline started", "streams", 2)
	logger.Warn(ctx, "slow frame")
	logger.Error(ctx, "device lost")

	out := buf.String()
	for _, want := range []string{"probing", "pipeline started", "slow frame", "device lost", "serial=123"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestWithAddsAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.New(slog.NewTextHandler(&buf, nil)))

	logger.With("serial", "abc").Info(context.Background(), "frame")

	if !strings.Contains(buf.String(), "serial=abc") {
		t.Fatalf("With attribute missing: %s", buf.String())
	}
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Info(context.Background(), "dropped")
	if log.With("k", "v") == nil {
		t.Fatal("Nop().With returned nil")
	}
}
