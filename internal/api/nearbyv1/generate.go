// Package nearbyv1 holds the generated nearby.v1 protobuf messages and gRPC
// stubs, plus the converters from db models to wire messages.
package nearbyv1

//go:generate protoc -I ../../../api --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative nearby/v1/nearby.proto
