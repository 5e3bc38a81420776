package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "dndmanager.statistics.v1alpha1.StatisticsService"

// StatisticsServiceServer is the server API for StatisticsService.
// Every message is a google.protobuf.Struct holding the JSON form of the
// request and response types in messages.go.
type StatisticsServiceServer interface {
	ComputeStatistics(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacterStatistics(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateSkillProficiency(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ApplyHitPointChange(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollAbilityScores(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRollSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearRollSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AssignScores(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedStatisticsServiceServer can be embedded to have forward compatible implementations
type UnimplementedStatisticsServiceServer struct{}

func (UnimplementedStatisticsServiceServer) ComputeStatistics(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeStatistics not implemented")
}

func (UnimplementedStatisticsServiceServer) GetCharacterStatistics(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCharacterStatistics not implemented")
}

func (UnimplementedStatisticsServiceServer) ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCharacters not implemented")
}

func (UnimplementedStatisticsServiceServer) SaveCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveCharacter not implemented")
}

func (UnimplementedStatisticsServiceServer) DeleteCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteCharacter not implemented")
}

func (UnimplementedStatisticsServiceServer) UpdateSkillProficiency(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateSkillProficiency not implemented")
}

func (UnimplementedStatisticsServiceServer) ApplyHitPointChange(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApplyHitPointChange not implemented")
}

func (UnimplementedStatisticsServiceServer) RollAbilityScores(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RollAbilityScores not implemented")
}

func (UnimplementedStatisticsServiceServer) GetRollSession(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRollSession not implemented")
}

func (UnimplementedStatisticsServiceServer) ClearRollSession(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearRollSession not implemented")
}

func (UnimplementedStatisticsServiceServer) AssignScores(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssignScores not implemented")
}

// RegisterStatisticsServiceServer registers the service on a gRPC server
func RegisterStatisticsServiceServer(s grpc.ServiceRegistrar, srv StatisticsServiceServer) {
	s.RegisterService(&StatisticsServiceDesc, srv)
}

// unaryHandler adapts one server method to a grpc.MethodDesc handler
func unaryHandler(
	name string,
	call func(StatisticsServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error),
) grpc.MethodHandler {
	fullMethod := "/" + ServiceName + "/" + name
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StatisticsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(StatisticsServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// StatisticsServiceDesc is the grpc.ServiceDesc for StatisticsService
var StatisticsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StatisticsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ComputeStatistics", Handler: unaryHandler("ComputeStatistics", StatisticsServiceServer.ComputeStatistics)},
		{MethodName: "GetCharacterStatistics", Handler: unaryHandler("GetCharacterStatistics", StatisticsServiceServer.GetCharacterStatistics)},
		{MethodName: "ListCharacters", Handler: unaryHandler("ListCharacters", StatisticsServiceServer.ListCharacters)},
		{MethodName: "SaveCharacter", Handler: unaryHandler("SaveCharacter", StatisticsServiceServer.SaveCharacter)},
		{MethodName: "DeleteCharacter", Handler: unaryHandler("DeleteCharacter", StatisticsServiceServer.DeleteCharacter)},
		{MethodName: "UpdateSkillProficiency", Handler: unaryHandler("UpdateSkillProficiency", StatisticsServiceServer.UpdateSkillProficiency)},
		{MethodName: "ApplyHitPointChange", Handler: unaryHandler("ApplyHitPointChange", StatisticsServiceServer.ApplyHitPointChange)},
		{MethodName: "RollAbilityScores", Handler: unaryHandler("RollAbilityScores", StatisticsServiceServer.RollAbilityScores)},
		{MethodName: "GetRollSession", Handler: unaryHandler("GetRollSession", StatisticsServiceServer.GetRollSession)},
		{MethodName: "ClearRollSession", Handler: unaryHandler("ClearRollSession", StatisticsServiceServer.ClearRollSession)},
		{MethodName: "AssignScores", Handler: unaryHandler("AssignScores", StatisticsServiceServer.AssignScores)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dndmanager/statistics/v1alpha1/statistics.proto",
}

// StatisticsServiceClient is the client API for StatisticsService
type StatisticsServiceClient interface {
	ComputeStatistics(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetCharacterStatistics(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListCharacters(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SaveCharacter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteCharacter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateSkillProficiency(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ApplyHitPointChange(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RollAbilityScores(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetRollSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ClearRollSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AssignScores(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type statisticsServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewStatisticsServiceClient creates a client on an existing connection
func NewStatisticsServiceClient(cc grpc.ClientConnInterface) StatisticsServiceClient {
	return &statisticsServiceClient{cc: cc}
}

func (c *statisticsServiceClient) invoke(ctx context.Context, name string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+name, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statisticsServiceClient) ComputeStatistics(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "ComputeStatistics", in, opts...)
}

func (c *statisticsServiceClient) GetCharacterStatistics(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "GetCharacterStatistics", in, opts...)
}

func (c *statisticsServiceClient) ListCharacters(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "ListCharacters", in, opts...)
}

func (c *statisticsServiceClient) SaveCharacter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "SaveCharacter", in, opts...)
}

func (c *statisticsServiceClient) DeleteCharacter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "DeleteCharacter", in, opts...)
}

func (c *statisticsServiceClient) UpdateSkillProficiency(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "UpdateSkillProficiency", in, opts...)
}

func (c *statisticsServiceClient) ApplyHitPointChange(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "ApplyHitPointChange", in, opts...)
}

func (c *statisticsServiceClient) RollAbilityScores(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "RollAbilityScores", in, opts...)
}

func (c *statisticsServiceClient) GetRollSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "GetRollSession", in, opts...)
}

func (c *statisticsServiceClient) ClearRollSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "ClearRollSession", in, opts...)
}

func (c *statisticsServiceClient) AssignScores(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "AssignScores", in, opts...)
}
