package errors_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	svcErr "github.com/oggyb/nearby/internal/errors"
)

func TestMap_DomainKinds(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{svcErr.InvalidArgument("bad lat"), codes.InvalidArgument},
		{svcErr.InvalidOperation("cannot like yourself"), codes.FailedPrecondition},
		{svcErr.Conflict("already swiped"), codes.AlreadyExists},
		{svcErr.NotFound("user not found"), codes.NotFound},
		{svcErr.Forbidden("premium feature"), codes.PermissionDenied},
		{svcErr.RateLimited("cooldown", time.Minute), codes.ResourceExhausted},
	}
	for _, tc := range cases {
		st, ok := status.FromError(svcErr.Map(tc.err))
		assert.True(t, ok)
		assert.Equal(t, tc.code, st.Code(), tc.err.Error())
	}
}

func TestMap_WrappedDomainError(t *testing.T) {
	err := fmt.Errorf("swipe: %w", svcErr.Conflict("already swiped"))
	assert.Equal(t, codes.AlreadyExists, status.Code(svcErr.Map(err)))
	assert.True(t, svcErr.Is(err, svcErr.KindConflict))
}

func TestMap_InfraErrors(t *testing.T) {
	assert.Nil(t, svcErr.Map(nil))
	assert.Equal(t, codes.NotFound, status.Code(svcErr.Map(gorm.ErrRecordNotFound)))
	assert.Equal(t, codes.AlreadyExists, status.Code(svcErr.Map(gorm.ErrDuplicatedKey)))
	assert.Equal(t, codes.DeadlineExceeded, status.Code(svcErr.Map(context.DeadlineExceeded)))
	assert.Equal(t, codes.Canceled, status.Code(svcErr.Map(context.Canceled)))
	assert.Equal(t, codes.Internal, status.Code(svcErr.Map(fmt.Errorf("boom"))))
}

func TestMap_RateLimitedCarriesRetryInfo(t *testing.T) {
	err := svcErr.Map(svcErr.RateLimited("wave cooldown", 90*time.Minute+500*time.Millisecond))
	assert.Equal(t, int64(5401), svcErr.RetryAfter(err))
}

func TestError_RemainingSeconds(t *testing.T) {
	e := &svcErr.Error{Kind: svcErr.KindRateLimited, Message: "x", RetryAfter: 1500 * time.Millisecond}
	assert.Equal(t, int64(2), e.RemainingSeconds())
	assert.Contains(t, e.Error(), "retry in 2s")
}
