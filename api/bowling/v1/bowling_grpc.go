package bowlingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "bowling.v1.BowlingService"

const (
	BowlingService_ScoreGame_FullMethodName    = "/bowling.v1.BowlingService/ScoreGame"
	BowlingService_GenerateGame_FullMethodName = "/bowling.v1.BowlingService/GenerateGame"
	BowlingService_GetGame_FullMethodName      = "/bowling.v1.BowlingService/GetGame"
	BowlingService_ListGames_FullMethodName    = "/bowling.v1.BowlingService/ListGames"
)

// Struct field names used in responses.
const (
	FieldID       = "id"       // string, stored games only
	FieldSeed     = "seed"     // decimal string, generated games only
	FieldNotation = "notation" // string
	FieldTotal    = "total"    // number
	FieldCreated  = "created"  // RFC 3339 timestamp, stored games only
	FieldSource   = "source"   // "CLIENT" or "SERVER", generated games only
	FieldFrames   = "frames"   // list of frame structs
	FieldNumber   = "number"   // frame number 1-10
	FieldKind     = "kind"     // "open", "spare", or "strike"
	FieldRolls    = "rolls"    // list of numbers
	FieldBonus    = "bonus"    // list of numbers
	FieldScore    = "score"    // frame score
	FieldRunning  = "running"  // running total through the frame
	FieldGames    = "games"    // list of game structs, newest first
)

// BowlingServiceClient is the client API for BowlingService.
type BowlingServiceClient interface {
	ScoreGame(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	GenerateGame(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetGame(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListGames(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type bowlingServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBowlingServiceClient returns a client bound to cc.
func NewBowlingServiceClient(cc grpc.ClientConnInterface) BowlingServiceClient {
	return &bowlingServiceClient{cc: cc}
}

func (c *bowlingServiceClient) ScoreGame(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, BowlingService_ScoreGame_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bowlingServiceClient) GenerateGame(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, BowlingService_GenerateGame_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bowlingServiceClient) GetGame(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, BowlingService_GetGame_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bowlingServiceClient) ListGames(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, BowlingService_ListGames_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// BowlingServiceServer is the server API for BowlingService.
type BowlingServiceServer interface {
	ScoreGame(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	GenerateGame(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	GetGame(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListGames(context.Context, *wrapperspb.Int32Value) (*structpb.Struct, error)
}

// UnimplementedBowlingServiceServer returns Unimplemented for every method.
type UnimplementedBowlingServiceServer struct{}

func (UnimplementedBowlingServiceServer) ScoreGame(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ScoreGame not implemented")
}

func (UnimplementedBowlingServiceServer) GenerateGame(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateGame not implemented")
}

func (UnimplementedBowlingServiceServer) GetGame(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetGame not implemented")
}

func (UnimplementedBowlingServiceServer) ListGames(context.Context, *wrapperspb.Int32Value) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListGames not implemented")
}

// RegisterBowlingServiceServer registers srv on s.
func RegisterBowlingServiceServer(s grpc.ServiceRegistrar, srv BowlingServiceServer) {
	s.RegisterService(&BowlingService_ServiceDesc, srv)
}

func _BowlingService_ScoreGame_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BowlingServiceServer).ScoreGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BowlingService_ScoreGame_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BowlingServiceServer).ScoreGame(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _BowlingService_GenerateGame_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BowlingServiceServer).GenerateGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BowlingService_GenerateGame_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BowlingServiceServer).GenerateGame(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _BowlingService_GetGame_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BowlingServiceServer).GetGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BowlingService_GetGame_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BowlingServiceServer).GetGame(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _BowlingService_ListGames_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int32Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BowlingServiceServer).ListGames(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BowlingService_ListGames_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BowlingServiceServer).ListGames(ctx, req.(*wrapperspb.Int32Value))
	}
	return interceptor(ctx, in, info, handler)
}

// BowlingService_ServiceDesc is the grpc.ServiceDesc for BowlingService.
var BowlingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BowlingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ScoreGame", Handler: _BowlingService_ScoreGame_Handler},
		{MethodName: "GenerateGame", Handler: _BowlingService_GenerateGame_Handler},
		{MethodName: "GetGame", Handler: _BowlingService_GetGame_Handler},
		{MethodName: "ListGames", Handler: _BowlingService_ListGames_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bowling/v1/bowling.proto",
}
