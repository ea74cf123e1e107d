package middleware

import "context"

type ctxKey string

const (
	RequestIDKey ctxKey = "request_id"
	OwnerKey     ctxKey = "owner"
)

// RequestID returns the id assigned to the request, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Owner returns the authenticated owner of the request.
func Owner(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(OwnerKey).(string)
	return owner, ok && owner != ""
}

// WithOwner stores owner on ctx.
func WithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, OwnerKey, owner)
}
