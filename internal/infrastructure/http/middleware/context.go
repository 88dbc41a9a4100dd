package middleware

import "context"

type contextKey string

const userContextKey contextKey = "user"

// WithUser injects the authenticated user id into the context.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

// UserFromContext returns the authenticated user id, or "".
func UserFromContext(ctx context.Context) string {
	v := ctx.Value(userContextKey)
	if v == nil {
		return ""
	}
	id, _ := v.(string)
	return id
}
