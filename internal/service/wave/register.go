package wave

import (
	"context"

	"google.golang.org/grpc"

	pb "github.com/oggyb/nearby/internal/api/nearbyv1"
	"github.com/oggyb/nearby/internal/app"
	svcErr "github.com/oggyb/nearby/internal/errors"
)

// Registrar ties the Wave service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterWaveServiceServer(s, &handler{appCtx: r.appCtx, svc: NewService(r.appCtx)})
}

type handler struct {
	pb.UnimplementedWaveServiceServer
	appCtx *app.AppContext
	svc    *Service
}

func (h *handler) SendWave(ctx context.Context, req *pb.WaveRequest) (*pb.SendWaveResponse, error) {
	w, err := h.svc.SendWave(ctx, req.GetUserId(), req.GetTargetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.SendWaveResponse{Wave: pb.NewWave(w, nil, h.appCtx.Now())}, nil
}

func (h *handler) CanSendWave(ctx context.Context, req *pb.WaveRequest) (*pb.CanSendWaveResponse, error) {
	ok, remaining, err := h.svc.CanSendWave(ctx, req.GetUserId(), req.GetTargetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	resp := &pb.CanSendWaveResponse{CanSend: ok}
	if remaining > 0 {
		resp.RetryAfterSeconds = (&svcErr.Error{RetryAfter: remaining}).RemainingSeconds()
	}
	return resp, nil
}

func (h *handler) ReceivedWaves(ctx context.Context, req *pb.ReceivedWavesRequest) (*pb.ReceivedWavesResponse, error) {
	received, err := h.svc.ReceivedWaves(ctx, req.GetUserId(), int(req.GetLimit()))
	if err != nil {
		return nil, svcErr.Map(err)
	}
	now := h.appCtx.Now()
	resp := &pb.ReceivedWavesResponse{Waves: make([]*pb.Wave, 0, len(received))}
	for i := range received {
		resp.Waves = append(resp.Waves, pb.NewWave(&received[i].Wave, received[i].From, now))
	}
	return resp, nil
}

func (h *handler) UnreadCount(ctx context.Context, req *pb.UserRequest) (*pb.UnreadCountResponse, error) {
	n, err := h.svc.UnreadCount(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.UnreadCountResponse{Count: n}, nil
}

func (h *handler) MarkAsRead(ctx context.Context, req *pb.MarkAsReadRequest) (*pb.Empty, error) {
	if err := h.svc.MarkAsRead(ctx, req.GetUserId(), req.GetWaveId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Empty{}, nil
}

func (h *handler) MarkAllAsRead(ctx context.Context, req *pb.UserRequest) (*pb.MarkAllAsReadResponse, error) {
	n, err := h.svc.MarkAllAsRead(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.MarkAllAsReadResponse{Updated: n}, nil
}
