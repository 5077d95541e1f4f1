package discovery

import (
	"context"

	"google.golang.org/grpc"

	pb "github.com/oggyb/nearby/internal/api/nearbyv1"
	"github.com/oggyb/nearby/internal/app"
	svcErr "github.com/oggyb/nearby/internal/errors"
)

// Registrar ties the Discovery service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterDiscoveryServiceServer(s, &handler{appCtx: r.appCtx, svc: NewService(r.appCtx)})
}

type handler struct {
	pb.UnimplementedDiscoveryServiceServer
	appCtx *app.AppContext
	svc    *Service
}

func (h *handler) GetCandidates(ctx context.Context, req *pb.GetCandidatesRequest) (*pb.GetCandidatesResponse, error) {
	page, err := h.svc.GetCandidates(ctx, req.GetUserId(), Filters{
		MinAge:        int(req.GetMinAge()),
		MaxAge:        int(req.GetMaxAge()),
		MaxDistanceKm: req.GetMaxDistanceKm(),
		Skip:          int(req.GetSkip()),
		Limit:         int(req.GetLimit()),
	})
	if err != nil {
		return nil, svcErr.Map(err)
	}

	now := h.appCtx.Now()
	resp := &pb.GetCandidatesResponse{
		Profiles: make([]*pb.Profile, 0, len(page.Profiles)),
		Total:    page.Total,
		HasMore:  page.HasMore,
	}
	for i := range page.Profiles {
		resp.Profiles = append(resp.Profiles, pb.NewProfile(&page.Profiles[i], now))
	}
	return resp, nil
}
