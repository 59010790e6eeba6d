package auth

import "context"

type contextKey struct{}

// AuthContext carries the authenticated identity and its session state
// through a request.
type AuthContext struct {
	UserID    int64
	SessionID int64
	Zipcode   string
}

func WithAuth(ctx context.Context, ac AuthContext) context.Context {
	return context.WithValue(ctx, contextKey{}, ac)
}

func FromContext(ctx context.Context) (AuthContext, bool) {
	ac, ok := ctx.Value(contextKey{}).(AuthContext)
	return ac, ok
}

func UserID(ctx context.Context) int64 {
	ac, ok := FromContext(ctx)
	if !ok {
		return 0
	}
	return ac.UserID
}

// Zipcode returns the active zipcode for the request, or "" when the
// request is unauthenticated or no zipcode has been resolved yet.
func Zipcode(ctx context.Context) string {
	ac, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return ac.Zipcode
}
