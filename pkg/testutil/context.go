package testutil

import (
	"context"
	"net/http"
	"time"

	id "komek/pkg/domain"
	"komek/pkg/requestcontext"
)

// ActorContext builds a context carrying an authenticated actor, the way
// the auth middleware would populate it. Invalid user IDs are silently
// ignored.
func ActorContext(ctx context.Context, userID, role string) context.Context {
	if parsed, err := id.ParseUserID(userID); err == nil {
		ctx = requestcontext.WithUserID(ctx, parsed)
	}
	if role != "" {
		ctx = requestcontext.WithRole(ctx, role)
	}
	return ctx
}

// WithActor adds an authenticated actor to the request context.
func WithActor(req *http.Request, userID, role string) *http.Request {
	return req.WithContext(ActorContext(req.Context(), userID, role))
}

// WithFrozenTime pins the request-scoped clock so timestamps in the test
// are deterministic.
func WithFrozenTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}

// WithClient adds client IP and user agent to the request context.
func WithClient(req *http.Request, ip, userAgent string) *http.Request {
	return req.WithContext(requestcontext.WithClientMetadata(req.Context(), ip, userAgent))
}
