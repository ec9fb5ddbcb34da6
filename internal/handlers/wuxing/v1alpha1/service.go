package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "wuxing.api.v1alpha1.GameService"

// Method names
const (
	MethodInitPlayer           = "InitPlayer"
	MethodGetState             = "GetState"
	MethodStartAdventure       = "StartAdventure"
	MethodSelectPlayerElement  = "SelectPlayerElement"
	MethodRevealOpponent       = "RevealOpponent"
	MethodSelectWinningRound   = "SelectWinningRound"
	MethodUseCurrencyToReverse = "UseCurrencyToReverse"
	MethodReplenishElements    = "ReplenishElements"
	MethodReturnToSpawn        = "ReturnToSpawn"
	MethodResetGame            = "ResetGame"
	MethodUpgradeSkill         = "UpgradeSkill"
	MethodCanStartAdventure    = "CanStartAdventure"
	MethodGetSkillUpgradeCost  = "GetSkillUpgradeCost"
)

// GameServiceServer is the server API for the game service. Requests and
// responses are google.protobuf.Struct documents.
type GameServiceServer interface {
	InitPlayer(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetState(context.Context, *structpb.Struct) (*structpb.Struct, error)
	StartAdventure(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectPlayerElement(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RevealOpponent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectWinningRound(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UseCurrencyToReverse(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReplenishElements(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReturnToSpawn(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResetGame(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpgradeSkill(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CanStartAdventure(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSkillUpgradeCost(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(GameServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// GameServiceDesc describes the game service for grpc.Server.RegisterService
var GameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodInitPlayer, GameServiceServer.InitPlayer),
		unaryMethod(MethodGetState, GameServiceServer.GetState),
		unaryMethod(MethodStartAdventure, GameServiceServer.StartAdventure),
		unaryMethod(MethodSelectPlayerElement, GameServiceServer.SelectPlayerElement),
		unaryMethod(MethodRevealOpponent, GameServiceServer.RevealOpponent),
		unaryMethod(MethodSelectWinningRound, GameServiceServer.SelectWinningRound),
		unaryMethod(MethodUseCurrencyToReverse, GameServiceServer.UseCurrencyToReverse),
		unaryMethod(MethodReplenishElements, GameServiceServer.ReplenishElements),
		unaryMethod(MethodReturnToSpawn, GameServiceServer.ReturnToSpawn),
		unaryMethod(MethodResetGame, GameServiceServer.ResetGame),
		unaryMethod(MethodUpgradeSkill, GameServiceServer.UpgradeSkill),
		unaryMethod(MethodCanStartAdventure, GameServiceServer.CanStartAdventure),
		unaryMethod(MethodGetSkillUpgradeCost, GameServiceServer.GetSkillUpgradeCost),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wuxing/api/v1alpha1/game.proto",
}

// Methods returns the names of every method in the service
func Methods() []string {
	names := make([]string, len(GameServiceDesc.Methods))
	for i, m := range GameServiceDesc.Methods {
		names[i] = m.MethodName
	}
	return names
}

// FullMethod returns the gRPC path of a method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// RegisterGameServiceServer registers srv on s
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameServiceDesc, srv)
}

func unaryMethod(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(GameServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(GameServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// GameServiceClient calls the game service by method name
type GameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient creates a client over cc
func NewGameServiceClient(cc grpc.ClientConnInterface) *GameServiceClient {
	return &GameServiceClient{cc: cc}
}

// Call invokes method with req
func (c *GameServiceClient) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
