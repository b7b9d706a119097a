package graph

import "context"

type ctxKey string

const bearerTokenKey ctxKey = "bearerToken"

// WithBearerToken stores the request's bearer token for resolvers.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey, token)
}

// BearerTokenFromContext returns the token stored by WithBearerToken, or "".
func BearerTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(bearerTokenKey).(string)
	return token
}
