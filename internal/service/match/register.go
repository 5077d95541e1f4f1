package match

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/oggyb/nearby/internal/api/nearbyv1"
	"github.com/oggyb/nearby/internal/app"
	svcErr "github.com/oggyb/nearby/internal/errors"
	"github.com/oggyb/nearby/internal/logger"
)

// Registrar ties the Match service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Match service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Match service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterMatchServiceServer(s, &handler{appCtx: r.appCtx, svc: NewService(r.appCtx)})
}

type handler struct {
	pb.UnimplementedMatchServiceServer
	appCtx *app.AppContext
	svc    *Service
}

func (h *handler) LikeUser(ctx context.Context, req *pb.SwipeRequest) (*pb.SwipeResponse, error) {
	return h.swipeResponse(h.svc.Like(ctx, req.GetUserId(), req.GetTargetUserId()))
}

func (h *handler) SuperLikeUser(ctx context.Context, req *pb.SwipeRequest) (*pb.SwipeResponse, error) {
	return h.swipeResponse(h.svc.SuperLike(ctx, req.GetUserId(), req.GetTargetUserId()))
}

func (h *handler) PassUser(ctx context.Context, req *pb.SwipeRequest) (*pb.SwipeResponse, error) {
	return h.swipeResponse(h.svc.Pass(ctx, req.GetUserId(), req.GetTargetUserId()))
}

func (h *handler) swipeResponse(res *SwipeResult, err error) (*pb.SwipeResponse, error) {
	if err != nil {
		return nil, svcErr.Map(err)
	}
	resp := &pb.SwipeResponse{Matched: res.Matched}
	if res.Match != nil {
		resp.Match = &pb.Match{
			Id:        res.Match.ID,
			Profile:   pb.NewProfile(res.Target, h.appCtx.Now()),
			MatchedAt: timestamppb.New(res.Match.MatchedAt),
		}
	}
	return resp, nil
}

func (h *handler) GetMatches(ctx context.Context, req *pb.GetMatchesRequest) (*pb.GetMatchesResponse, error) {
	views, err := h.svc.GetMatches(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	now := h.appCtx.Now()
	resp := &pb.GetMatchesResponse{Matches: make([]*pb.Match, 0, len(views))}
	for i := range views {
		resp.Matches = append(resp.Matches, &pb.Match{
			Id:        views[i].Match.ID,
			Profile:   pb.NewProfile(&views[i].Other, now),
			MatchedAt: timestamppb.New(views[i].Match.MatchedAt),
		})
	}
	return resp, nil
}

func (h *handler) Unmatch(ctx context.Context, req *pb.UnmatchRequest) (*pb.Empty, error) {
	if err := h.svc.Unmatch(ctx, req.GetUserId(), req.GetMatchId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Empty{}, nil
}

func (h *handler) RewindLastSwipe(ctx context.Context, req *pb.RewindRequest) (*pb.RewindResponse, error) {
	res, err := h.svc.RewindLastSwipe(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.RewindResponse{
		Profile:      pb.NewProfile(&res.Profile, h.appCtx.Now()),
		Kind:         string(res.Swipe.Kind),
		MatchRemoved: res.MatchRemoved,
	}, nil
}

func (h *handler) LikesReceived(ctx context.Context, req *pb.LikesReceivedRequest) (*pb.LikesReceivedResponse, error) {
	logger.FromContext(ctx, h.appCtx.Logger).Debug("LikesReceived called", "user_id", req.GetUserId(), "token", req.GetPaginationToken())

	var token *string
	if t := req.GetPaginationToken(); t != "" {
		token = &t
	}
	page, err := h.svc.LikesReceived(ctx, req.GetUserId(), token, int(req.GetLimit()))
	if err != nil {
		return nil, svcErr.Map(err)
	}

	now := h.appCtx.Now()
	resp := &pb.LikesReceivedResponse{Likes: make([]*pb.ReceivedLike, 0, len(page.Likes))}
	if page.NextToken != nil {
		resp.NextPaginationToken = *page.NextToken
	}
	for i := range page.Likes {
		resp.Likes = append(resp.Likes, &pb.ReceivedLike{
			Profile: pb.NewProfile(&page.Likes[i].From, now),
			Kind:    string(page.Likes[i].Swipe.Kind),
			LikedAt: timestamppb.New(page.Likes[i].Swipe.CreatedAt),
		})
	}
	return resp, nil
}
