package location

import (
	"google.golang.org/grpc"

	pb "github.com/oggyb/nearby/internal/api/nearbyv1"
	"github.com/oggyb/nearby/internal/app"
	"github.com/oggyb/nearby/internal/service/geofence"
)

// Registrar ties the Location service into the gRPC server
type Registrar struct {
	appCtx  *app.AppContext
	tracker *geofence.Tracker
}

// NewRegistrar creates a new Registrar for the Location service
func NewRegistrar(appCtx *app.AppContext, tracker *geofence.Tracker) *Registrar {
	return &Registrar{appCtx: appCtx, tracker: tracker}
}

// Register attaches the Location service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterLocationServiceServer(s, NewHandler(r.appCtx, NewService(r.appCtx, r.tracker)))
}
