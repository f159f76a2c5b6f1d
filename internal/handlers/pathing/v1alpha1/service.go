// Package v1alpha1 exposes the navigation orchestrator over gRPC. Requests
// and responses are google.protobuf.Struct messages; the field layout of each
// method is documented on the Handler methods.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "pathing.v1alpha1.PathingService"

// Method names.
const (
	MethodCreateLevel         = "CreateLevel"
	MethodGetLevel            = "GetLevel"
	MethodDeleteLevel         = "DeleteLevel"
	MethodListLevels          = "ListLevels"
	MethodFindPath            = "FindPath"
	MethodSubmitPathRequest   = "SubmitPathRequest"
	MethodFetchCompletedPaths = "FetchCompletedPaths"
	MethodSetObstacle         = "SetObstacle"
	MethodPlaceBuilding       = "PlaceBuilding"
	MethodRemoveBuilding      = "RemoveBuilding"
	MethodRequestUnitMove     = "RequestUnitMove"
	MethodCollectUnitPaths    = "CollectUnitPaths"
)

// PathingServiceServer is the server API for the pathing service.
type PathingServiceServer interface {
	CreateLevel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetLevel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteLevel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListLevels(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FindPath(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitPathRequest(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FetchCompletedPaths(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetObstacle(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PlaceBuilding(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveBuilding(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RequestUnitMove(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CollectUnitPaths(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type serverMethod func(PathingServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

var serverMethods = map[string]serverMethod{
	MethodCreateLevel:         PathingServiceServer.CreateLevel,
	MethodGetLevel:            PathingServiceServer.GetLevel,
	MethodDeleteLevel:         PathingServiceServer.DeleteLevel,
	MethodListLevels:          PathingServiceServer.ListLevels,
	MethodFindPath:            PathingServiceServer.FindPath,
	MethodSubmitPathRequest:   PathingServiceServer.SubmitPathRequest,
	MethodFetchCompletedPaths: PathingServiceServer.FetchCompletedPaths,
	MethodSetObstacle:         PathingServiceServer.SetObstacle,
	MethodPlaceBuilding:       PathingServiceServer.PlaceBuilding,
	MethodRemoveBuilding:      PathingServiceServer.RemoveBuilding,
	MethodRequestUnitMove:     PathingServiceServer.RequestUnitMove,
	MethodCollectUnitPaths:    PathingServiceServer.CollectUnitPaths,
}

// ServiceDesc describes the pathing service for grpc.Server registration.
var ServiceDesc = newServiceDesc()

func newServiceDesc() grpc.ServiceDesc {
	desc := grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*PathingServiceServer)(nil),
		Streams:     []grpc.StreamDesc{},
		Metadata:    "pathing/v1alpha1/pathing.proto",
	}
	for _, name := range []string{
		MethodCreateLevel, MethodGetLevel, MethodDeleteLevel, MethodListLevels,
		MethodFindPath, MethodSubmitPathRequest, MethodFetchCompletedPaths,
		MethodSetObstacle, MethodPlaceBuilding, MethodRemoveBuilding,
		MethodRequestUnitMove, MethodCollectUnitPaths,
	} {
		desc.Methods = append(desc.Methods, grpc.MethodDesc{
			MethodName: name,
			Handler:    unaryHandler(name, serverMethods[name]),
		})
	}
	return desc
}

func unaryHandler(name string, call serverMethod) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	fullMethod := FullMethod(name)
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PathingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PathingServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// FullMethod returns the "/service/method" path of a method.
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// RegisterPathingServiceServer registers srv with s.
func RegisterPathingServiceServer(s grpc.ServiceRegistrar, srv PathingServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
