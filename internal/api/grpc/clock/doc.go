// Package clock implements the BerlinClockService gRPC API.
//
// The service is declared directly with grpc.ServiceDesc and uses protobuf
// well-known types for its messages, so no generated code is required.
// Client helpers (Invoke* functions) share the method names with the server.
package clock
