package errors

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies a domain failure. Transport layers switch on it.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindInvalidOperation
	KindConflict
	KindNotFound
	KindForbidden
	KindRateLimited
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by the service layer.
type Error struct {
	Kind    Kind
	Message string
	// RetryAfter is set for KindRateLimited.
	RetryAfter time.Duration
}

func (e *Error) Error() string {
	if e.Kind == KindRateLimited && e.RetryAfter > 0 {
		return fmt.Sprintf("%s: %s (retry in %ds)", e.Kind, e.Message, e.RemainingSeconds())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// RemainingSeconds rounds RetryAfter up to whole seconds.
func (e *Error) RemainingSeconds() int64 {
	secs := int64(e.RetryAfter / time.Second)
	if e.RetryAfter%time.Second != 0 {
		secs++
	}
	return secs
}

func InvalidOperation(msg string) error { return &Error{Kind: KindInvalidOperation, Message: msg} }
func Conflict(msg string) error         { return &Error{Kind: KindConflict, Message: msg} }
func NotFound(msg string) error         { return &Error{Kind: KindNotFound, Message: msg} }
func Forbidden(msg string) error        { return &Error{Kind: KindForbidden, Message: msg} }

// InvalidArgument is used for malformed input (bad ids, out-of-range coordinates).
func InvalidArgument(msg string) error { return &Error{Kind: KindInvalidArgument, Message: msg} }

// RateLimited reports a cooldown that has not elapsed yet.
func RateLimited(msg string, retryAfter time.Duration) error {
	return &Error{Kind: KindRateLimited, Message: msg, RetryAfter: retryAfter}
}

// KindOf extracts the Kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool { return KindOf(err) == kind }
