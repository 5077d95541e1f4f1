package boost

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/oggyb/nearby/internal/api/nearbyv1"
	"github.com/oggyb/nearby/internal/app"
	svcErr "github.com/oggyb/nearby/internal/errors"
)

// Registrar ties the Boost service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterBoostServiceServer(s, &handler{svc: NewService(r.appCtx)})
}

type handler struct {
	pb.UnimplementedBoostServiceServer
	svc *Service
}

func (h *handler) ActivateBoost(ctx context.Context, req *pb.BoostRequest) (*pb.ActivateBoostResponse, error) {
	until, err := h.svc.ActivateBoost(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.ActivateBoostResponse{BoostedUntil: timestamppb.New(until)}, nil
}

func (h *handler) GetBoostStatus(ctx context.Context, req *pb.BoostRequest) (*pb.BoostStatusResponse, error) {
	st, err := h.svc.GetBoostStatus(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.BoostStatusResponse{IsBoosted: st.IsBoosted, BoostedUntil: pb.TimestampOrNil(st.BoostedUntil)}, nil
}
