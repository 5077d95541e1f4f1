package location

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/oggyb/nearby/internal/api/nearbyv1"
	"github.com/oggyb/nearby/internal/app"
	svcErr "github.com/oggyb/nearby/internal/errors"
	"github.com/oggyb/nearby/internal/geo"
	"github.com/oggyb/nearby/internal/logger"
	"github.com/oggyb/nearby/internal/service/geofence"
)

// Handler adapts Service to nearby.v1.LocationService.
type Handler struct {
	pb.UnimplementedLocationServiceServer
	appCtx *app.AppContext
	svc    *Service
}

func NewHandler(appCtx *app.AppContext, svc *Service) *Handler {
	return &Handler{appCtx: appCtx, svc: svc}
}

func (h *Handler) UpdateLocation(ctx context.Context, req *pb.UpdateLocationRequest) (*pb.UpdateLocationResponse, error) {
	logger.FromContext(ctx, h.appCtx.Logger).Debug("UpdateLocation called", "user_id", req.GetUserId())

	res, err := h.svc.UpdateLocation(ctx, req.GetUserId(), geo.Point{Lat: req.GetLatitude(), Lng: req.GetLongitude()})
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.UpdateLocationResponse{
		UpdatedAt:          timestamppb.New(res.UpdatedAt),
		IndexSynced:        res.IndexSynced,
		GeofencesEvaluated: res.GeofencesEvaluated,
		Events:             h.eventsToPB(ctx, res.Events),
	}, nil
}

func (h *Handler) QueryNearby(ctx context.Context, req *pb.QueryNearbyRequest) (*pb.QueryNearbyResponse, error) {
	center := geo.Point{Lat: req.GetLatitude(), Lng: req.GetLongitude()}
	res, err := h.svc.QueryRadius(ctx, center, req.GetRadiusKm(), int(req.GetLimit()), req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	now := h.appCtx.Now()
	resp := &pb.QueryNearbyResponse{FromIndex: res.FromIndex, Users: make([]*pb.NearbyUser, 0, len(res.Users))}
	for i := range res.Users {
		resp.Users = append(resp.Users, &pb.NearbyUser{
			Profile:    pb.NewProfile(&res.Users[i].User, now),
			DistanceKm: res.Users[i].DistanceKm,
		})
	}
	return resp, nil
}

func (h *Handler) QueryBoundingBox(ctx context.Context, req *pb.QueryBoundingBoxRequest) (*pb.QueryBoundingBoxResponse, error) {
	box := geo.Box{
		MinLat: req.GetMinLatitude(),
		MinLng: req.GetMinLongitude(),
		MaxLat: req.GetMaxLatitude(),
		MaxLng: req.GetMaxLongitude(),
	}
	users, err := h.svc.QueryBoundingBox(ctx, box, int(req.GetLimit()))
	if err != nil {
		return nil, svcErr.Map(err)
	}

	now := h.appCtx.Now()
	resp := &pb.QueryBoundingBoxResponse{Users: make([]*pb.MapUser, 0, len(users))}
	for i := range users {
		p, _ := users[i].Position()
		resp.Users = append(resp.Users, &pb.MapUser{
			Profile:   pb.NewProfile(&users[i], now),
			Latitude:  p.Lat,
			Longitude: p.Lng,
		})
	}
	return resp, nil
}

func (h *Handler) RemoveFromIndex(ctx context.Context, req *pb.RemoveFromIndexRequest) (*pb.Empty, error) {
	if err := h.svc.RemoveFromIndex(ctx, req.GetUserId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Empty{}, nil
}

func (h *Handler) CheckGeofences(ctx context.Context, req *pb.CheckGeofencesRequest) (*pb.CheckGeofencesResponse, error) {
	events, err := h.svc.CheckGeofences(ctx, req.GetUserId(), geo.Point{Lat: req.GetLatitude(), Lng: req.GetLongitude()})
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.CheckGeofencesResponse{Events: h.eventsToPB(ctx, events)}, nil
}

func (h *Handler) eventsToPB(ctx context.Context, events []geofence.Event) []*pb.GeofenceEvent {
	out := make([]*pb.GeofenceEvent, 0, len(events))
	for _, ev := range events {
		n := ev.Geofence.Notification.Data()
		pe := &pb.GeofenceEvent{
			GeofenceId: ev.Geofence.ID,
			Name:       ev.Geofence.Name,
			Type:       string(ev.Type),
			Title:      n.Title,
			Body:       n.Body,
			ImageUrl:   n.ImageURL,
			ActionUrl:  n.ActionURL,
			OccurredAt: timestamppb.New(ev.OccurredAt),
		}
		if len(n.Data) > 0 {
			data, err := structpb.NewStruct(n.Data)
			if err != nil {
				logger.FromContext(ctx, h.appCtx.Logger).Warn("dropping geofence data", "geofence_id", ev.Geofence.ID, "error", err)
			} else {
				pe.Data = data
			}
		}
		out = append(out, pe)
	}
	return out
}
