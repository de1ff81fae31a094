package clock

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "berlinclock.v1.BerlinClockService"

	// ConvertTimeMethod is the full method name of ConvertTime.
	ConvertTimeMethod = "/" + ServiceName + "/ConvertTime"
	// GetDisplayMethod is the full method name of GetDisplay.
	GetDisplayMethod = "/" + ServiceName + "/GetDisplay"
)

// ServiceServer is the server API of BerlinClockService.
type ServiceServer interface {
	// ConvertTime renders a HH:MM:SS string as five lines of Y/R/O lamps.
	ConvertTime(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	// GetDisplay returns the lamp rows of a HH:MM:SS string keyed by row name.
	GetDisplay(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
}

// serviceDesc describes BerlinClockService for grpc.Server.RegisterService.
//
//nolint:gochecknoglobals // Service descriptors are package-level by convention.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ConvertTime",
			Handler:    convertTimeHandler,
		},
		{
			MethodName: "GetDisplay",
			Handler:    getDisplayHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "berlinclock/v1/berlin_clock.proto",
}

// RegisterServiceServer registers srv on the provided registrar.
func RegisterServiceServer(registrar grpc.ServiceRegistrar, srv ServiceServer) {
	registrar.RegisterService(&serviceDesc, srv)
}

//nolint:revive // Signature is dictated by grpc.MethodHandler.
func convertTimeHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(ServiceServer).ConvertTime(ctx, in) //nolint:forcetypeassert // Guaranteed by HandlerType.
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConvertTimeMethod,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		//nolint:forcetypeassert // Guaranteed by HandlerType and dec above.
		return srv.(ServiceServer).ConvertTime(ctx, req.(*wrapperspb.StringValue))
	}

	return interceptor(ctx, in, info, handler)
}

//nolint:revive // Signature is dictated by grpc.MethodHandler.
func getDisplayHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(ServiceServer).GetDisplay(ctx, in) //nolint:forcetypeassert // Guaranteed by HandlerType.
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetDisplayMethod,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		//nolint:forcetypeassert // Guaranteed by HandlerType and dec above.
		return srv.(ServiceServer).GetDisplay(ctx, req.(*wrapperspb.StringValue))
	}

	return interceptor(ctx, in, info, handler)
}

// InvokeConvertTime calls ConvertTime on conn.
func InvokeConvertTime(
	ctx context.Context,
	conn grpc.ClientConnInterface,
	in *wrapperspb.StringValue,
	opts ...grpc.CallOption,
) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := conn.Invoke(ctx, ConvertTimeMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// InvokeGetDisplay calls GetDisplay on conn.
func InvokeGetDisplay(
	ctx context.Context,
	conn grpc.ClientConnInterface,
	in *wrapperspb.StringValue,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := conn.Invoke(ctx, GetDisplayMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}
