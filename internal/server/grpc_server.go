package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// GRPCServer is a grpc.Server with every registrar attached, the standard
// health service and reflection.
type GRPCServer struct {
	*grpc.Server
	health *health.Server
	log    *slog.Logger
}

// NewGRPCServer builds the server and registers all provided services
func NewGRPCServer(log *slog.Logger, registrars ...Registrar) *GRPCServer {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(RecoveryInterceptor(log), LoggingInterceptor(log)),
	)

	// register all services
	for _, r := range registrars {
		r.Register(s)
	}

	hs := health.NewServer()
	for name := range s.GetServiceInfo() {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	// enable reflection for easier debugging with grpcurl
	reflection.Register(s)

	return &GRPCServer{Server: s, health: hs, log: log}
}

// ListenAndServe listens on addr and serves until ctx is done.
func (g *GRPCServer) ListenAndServe(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	g.log.Info("starting gRPC server", "addr", lis.Addr().String())
	return g.ServeListener(ctx, lis)
}

// ServeListener serves on lis until ctx is done, then reports NOT_SERVING
// and drains in-flight calls.
func (g *GRPCServer) ServeListener(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() { errCh <- g.Server.Serve(lis) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		g.health.Shutdown()
		g.Server.GracefulStop()
		err := <-errCh
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		g.log.Info("gRPC server stopped")
		return err
	}
}
