//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TestDial_ValidatesAddress verifies that Dial rejects empty addresses.
func TestDial_ValidatesAddress(t *testing.T) {
	t.Parallel()

	c, err := Dial(context.Background(), "")
	require.Error(t, err)
	require.Nil(t, c)
}

// TestClient_callContext checks timeout vs cancel-only behavior of callContext.
func TestClient_callContext(t *testing.T) {
	t.Parallel()

	c := &Client{
		callTimeout: 0,
	}

	ctx, cancel := c.callContext(context.Background())
	cancel()

	require.NotNil(t, ctx)

	c.callTimeout = 10 * time.Millisecond

	ctx, cancel = c.callContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 30*time.Millisecond)
}

// TestClient_NotConnected asserts that calls on an empty client fail instead of panicking.
func TestClient_NotConnected(t *testing.T) {
	t.Parallel()

	c := new(Client)

	_, err := c.ConvertTime(context.Background(), "12:00:00")
	require.Error(t, err)

	_, err = c.GetDisplay(context.Background(), "12:00:00")
	require.Error(t, err)

	require.NoError(t, c.Close())
}

// TestWrapError maps InvalidArgument to ErrInvalidTime and keeps other errors.
func TestWrapError(t *testing.T) {
	t.Parallel()

	err := wrapError("convert time", status.Error(codes.InvalidArgument, `parse time "25:00:00": out of range`))
	require.ErrorIs(t, err, ErrInvalidTime)
	require.Contains(t, err.Error(), `"25:00:00"`)

	unavailable := status.Error(codes.Unavailable, "connection refused")
	err = wrapError("convert time", unavailable)
	require.NotErrorIs(t, err, ErrInvalidTime)
	require.Equal(t, codes.Unavailable, status.Code(err))
}
