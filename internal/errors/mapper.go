// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
	"gorm.io/gorm"
)

// Map converts domain/repo/infra errors into gRPC status errors.
// Handlers return svcErr.Map(err) and never build statuses themselves.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var de *Error
	if errors.As(err, &de) {
		return fromDomain(de)
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, gorm.ErrDuplicatedKey):
		return status.Error(codes.AlreadyExists, "record already exists")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func fromDomain(e *Error) error {
	switch e.Kind {
	case KindInvalidArgument:
		return status.Error(codes.InvalidArgument, e.Message)
	case KindInvalidOperation:
		return status.Error(codes.FailedPrecondition, e.Message)
	case KindConflict:
		return status.Error(codes.AlreadyExists, e.Message)
	case KindNotFound:
		return status.Error(codes.NotFound, e.Message)
	case KindForbidden:
		return status.Error(codes.PermissionDenied, e.Message)
	case KindRateLimited:
		st := status.New(codes.ResourceExhausted, e.Message)
		withRetry, err := st.WithDetails(&errdetails.RetryInfo{
			RetryDelay: durationpb.New(e.RetryAfter),
		})
		if err != nil {
			return st.Err()
		}
		return withRetry.Err()
	default:
		return status.Error(codes.Unknown, e.Message)
	}
}

// RetryAfter digs the RetryInfo detail out of a gRPC status error.
// Returns 0 when the error carries none.
func RetryAfter(err error) int64 {
	st, ok := status.FromError(err)
	if !ok {
		return 0
	}
	for _, d := range st.Details() {
		if ri, ok := d.(*errdetails.RetryInfo); ok && ri.GetRetryDelay() != nil {
			e := &Error{Kind: KindRateLimited, RetryAfter: ri.GetRetryDelay().AsDuration()}
			return e.RemainingSeconds()
		}
	}
	return 0
}
