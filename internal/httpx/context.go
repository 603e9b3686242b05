package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	userKey      contextKey = "user"
	roleKey      contextKey = "role"
	requestIDKey contextKey = "requestID"
)

// UserFrom retrieves the authenticated user's subject from the request context.
func UserFrom(r *http.Request) string {
	if v, ok := r.Context().Value(userKey).(string); ok {
		return v
	}
	return ""
}

// RoleFrom retrieves the authenticated user's role from the request context.
func RoleFrom(r *http.Request) string {
	if v, ok := r.Context().Value(roleKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithUser returns a new context carrying the subject and role.
func ContextWithUser(ctx context.Context, subject, role string) context.Context {
	ctx = context.WithValue(ctx, userKey, subject)
	return context.WithValue(ctx, roleKey, role)
}

// RequestIDFrom retrieves the request id from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context carrying the request id.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
