// Package ctxutil carries the per-request session and request id through
// context.Context. Services read the caller's identity from here instead of
// any process-wide state.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	sessionKey   ctxKey = "session"
	requestIDKey ctxKey = "request_id"
)

// RoleAdmin is the role that unlocks time-machine operations.
const RoleAdmin = "admin"

// Session is the authenticated caller of a request.
type Session struct {
	UserID uuid.UUID
	Role   string
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// WithSession stores the session in the context.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromCtx extracts the session from the context.
// Returns false if the value is missing, has a nil user id, or is of the wrong type.
func SessionFromCtx(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey).(Session)
	if !ok || s.UserID == uuid.Nil {
		return Session{}, false
	}
	return s, true
}

// WithUserID stores a plain (non-admin) session for the user.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return WithSession(ctx, Session{UserID: id})
}

// UserIDFromCtx extracts the user ID from the context session.
// Returns uuid.Nil and false if no valid session is present.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	s, ok := SessionFromCtx(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return s.UserID, true
}

// IsAdminCtx reports whether the context session is an admin session.
func IsAdminCtx(ctx context.Context) bool {
	s, ok := SessionFromCtx(ctx)
	return ok && s.IsAdmin()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
