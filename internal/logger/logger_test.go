package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		" WARN ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"panic":   zapcore.PanicLevel,
		"fatal":   zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestContextHelpers ensures scoped loggers travel through the context.
func TestContextHelpers(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "converter")
	ctx = WithKV(ctx, "mode", "strict")

	DebugKV(ctx, "Display computed", "input", "13:17:01")
	ErrorKV(ctx, "Parse failed", "input", "")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "converter", entries[0].LoggerName)
	require.Equal(t, "Display computed", entries[0].Message)
	require.Equal(t, "strict", entries[0].ContextMap()["mode"])
	require.Equal(t, "13:17:01", entries[0].ContextMap()["input"])
	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
