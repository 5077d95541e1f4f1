package server

import "google.golang.org/grpc"

// Registrar attaches one gRPC service to the server. Every service package
// exposes one through NewRegistrar.
type Registrar interface {
	Register(s *grpc.Server)
}

// RegistrarFunc adapts a plain function to Registrar.
type RegistrarFunc func(s *grpc.Server)

func (f RegistrarFunc) Register(s *grpc.Server) { f(s) }
