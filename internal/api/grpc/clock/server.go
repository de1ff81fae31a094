package clock

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	domain "github.com/oshokin/berlin-clock/internal/domain/clock"
	"github.com/oshokin/berlin-clock/internal/timeparse"
)

// Row names used as keys of the GetDisplay response.
const (
	FieldSeconds      = "seconds"
	FieldHoursTens    = "hours_tens"
	FieldHoursUnits   = "hours_units"
	FieldMinutesTens  = "minutes_tens"
	FieldMinutesUnits = "minutes_units"
)

// Converter abstracts the conversion operations the transport layer depends on.
type Converter interface {
	ConvertTime(ctx context.Context, s string) (string, error)
	Display(ctx context.Context, s string) (domain.Display, error)
}

// Server implements the BerlinClockService gRPC API.
type Server struct {
	// converter provides the parsing and rendering logic.
	converter Converter
}

var _ ServiceServer = (*Server)(nil)

// NewServer wires the provided converter into a gRPC handler.
func NewServer(converter Converter) *Server {
	return &Server{
		converter: converter,
	}
}

// ConvertTime renders the requested time as plain text.
func (s *Server) ConvertTime(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	text, err := s.converter.ConvertTime(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}

	return wrapperspb.String(text), nil
}

// GetDisplay returns the lamp rows of the requested time.
func (s *Server) GetDisplay(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	display, err := s.converter.Display(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}

	return ToStruct(display), nil
}

// ToStruct converts a display into its GetDisplay wire form.
func ToStruct(display domain.Display) *structpb.Struct {
	rows := display.Rows()

	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			FieldSeconds:      structpb.NewStringValue(rows[0].String()),
			FieldHoursTens:    structpb.NewStringValue(rows[1].String()),
			FieldHoursUnits:   structpb.NewStringValue(rows[2].String()),
			FieldMinutesTens:  structpb.NewStringValue(rows[3].String()),
			FieldMinutesUnits: structpb.NewStringValue(rows[4].String()),
		},
	}
}

// toStatus maps parse errors to InvalidArgument and hides anything else.
func toStatus(err error) error {
	var parseErr *timeparse.ParseError
	if errors.As(err, &parseErr) {
		return status.Error(codes.InvalidArgument, parseErr.Error())
	}

	return status.Error(codes.Internal, "unable to convert time")
}
