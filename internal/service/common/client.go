//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	api "github.com/oshokin/berlin-clock/internal/api/grpc/clock"
	"github.com/oshokin/berlin-clock/internal/config"
)

// Client wraps the BerlinClockService gRPC connection with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the clock server.
	conn *grpc.ClientConn

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// ErrInvalidTime is returned when the server rejects the time string.
	ErrInvalidTime = errors.New("invalid time")
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errNotConnected is returned when a call is made on a client without a connection.
	errNotConnected = errors.New("client is not connected")
)

// Dial creates a gRPC client for the clock server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial clock server: %w", err)
	}

	client := &Client{
		conn:        conn,
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// ConvertTime asks the server to render s.
func (c *Client) ConvertTime(ctx context.Context, s string) (string, error) {
	if c == nil || c.conn == nil {
		return "", errNotConnected
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := api.InvokeConvertTime(callCtx, c.conn, wrapperspb.String(s))
	if err != nil {
		return "", wrapError("convert time", err)
	}

	return resp.GetValue(), nil
}

// GetDisplay asks the server for the lamp rows of s keyed by row name.
func (c *Client) GetDisplay(ctx context.Context, s string) (map[string]string, error) {
	if c == nil || c.conn == nil {
		return nil, errNotConnected
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := api.InvokeGetDisplay(callCtx, c.conn, wrapperspb.String(s))
	if err != nil {
		return nil, wrapError("get display", err)
	}

	rows := make(map[string]string, len(resp.GetFields()))
	for name, value := range resp.GetFields() {
		rows[name] = value.GetStringValue()
	}

	return rows, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}

// wrapError turns InvalidArgument replies into ErrInvalidTime carrying the
// server's message and wraps everything else as is.
func wrapError(op string, err error) error {
	if st, ok := status.FromError(err); ok && st.Code() == codes.InvalidArgument {
		return fmt.Errorf("%w: %s", ErrInvalidTime, st.Message())
	}

	return fmt.Errorf("%s: %w", op, err)
}
