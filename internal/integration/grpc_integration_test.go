package integration

import (
	"context"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	api "github.com/oshokin/berlin-clock/internal/api/grpc/clock"
	"github.com/oshokin/berlin-clock/internal/config"
	"github.com/oshokin/berlin-clock/internal/render"
	"github.com/oshokin/berlin-clock/internal/service/common"
	"github.com/oshokin/berlin-clock/internal/service/server"
)

// startGRPC starts the clock server on a free local port with a temporary config.
// Returns the bound address; the server is stopped when the test finishes.
func startGRPC(t *testing.T, strict bool) string {
	t.Helper()

	// Create cancellable context for server lifecycle.
	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	// Create temporary configuration file.
	cfg := config.Default()
	cfg.Strict = strict
	cfg.ServerAddress = "127.0.0.1:0"
	require.NoError(t, config.Save(cfgPath, cfg))

	ready := make(chan net.Addr, 1)
	done := make(chan error, 1)

	// Start server in background goroutine.
	go func() {
		done <- server.Run(ctx, &server.Options{
			ConfigPath:    cfgPath,
			ListenAddress: "127.0.0.1:0",
			Ready:         func(a net.Addr) { ready <- a },
		})
	}()

	var addr string

	select {
	case a := <-ready:
		addr = a.String()
	case err := <-done:
		cancel()
		t.Fatalf("server exited early: %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("server did not start")
	}

	// Registered before any client cleanup, so clients close first.
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	return addr
}

// dial connects a client to addr and closes it at the end of the test.
func dial(t *testing.T, addr string) *common.Client {
	t.Helper()

	c, err := common.Dial(context.Background(), addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

// TestGRPC_Roundtrip starts the real server and exercises ConvertTime and GetDisplay.
func TestGRPC_Roundtrip(t *testing.T) {
	t.Parallel()

	addr := startGRPC(t, true)

	c := dial(t, addr)
	ctx := context.Background()

	text, err := c.ConvertTime(ctx, "13:17:01")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{"O", "RROO", "RRRO", "YYROOOOOOOO", "YYOO"}, render.LineSeparator), text)

	rows, err := c.GetDisplay(ctx, "24:00:00")
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		api.FieldSeconds:      "Y",
		api.FieldHoursTens:    "RRRR",
		api.FieldHoursUnits:   "RRRR",
		api.FieldMinutesTens:  "OOOOOOOOOOO",
		api.FieldMinutesUnits: "OOOO",
	}, rows)

	for _, input := range []string{"25:00:00", "12:60:00", ""} {
		_, err = c.ConvertTime(ctx, input)
		require.ErrorIs(t, err, common.ErrInvalidTime, input)
		require.Contains(t, err.Error(), `"`+input+`"`)
	}
}

// TestGRPC_LenientServer verifies the server honours the lenient setting.
func TestGRPC_LenientServer(t *testing.T) {
	t.Parallel()

	addr := startGRPC(t, false)

	c := dial(t, addr)

	text, err := c.ConvertTime(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{"O", "OOOO", "OOOO", "OOOOOOOOOOO", "OOOO"}, render.LineSeparator), text)

	text, err = c.ConvertTime(context.Background(), "12:30")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(text, "Y"+render.LineSeparator))
}
