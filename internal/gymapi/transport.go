package gymapi

import (
    "context"
    "net/http"
)

// tokenKey is the context key under which the caller's bearer token
// travels to the transport.  An unexported type avoids collisions
// with keys set by other packages.
type tokenKey struct{}

// WithToken returns a context carrying the bearer token that
// bearerTransport will attach to outgoing requests.  The gateway puts
// the caller's own token here so upstream calls run with the caller's
// identity.
func WithToken(ctx context.Context, token string) context.Context {
    return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
    if v, ok := ctx.Value(tokenKey{}).(string); ok {
        return v
    }
    return ""
}

// bearerTransport injects the Authorization header on every outgoing
// request, playing the role the original system gave to its request
// interceptor.  It wraps a base RoundTripper and never modifies the
// original request.
type bearerTransport struct {
    base http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
    base := t.base
    if base == nil {
        base = http.DefaultTransport
    }
    if tok := tokenFrom(req.Context()); tok != "" {
        clone := req.Clone(req.Context())
        clone.Header.Set("Authorization", "Bearer "+tok)
        req = clone
    }
    return base.RoundTrip(req)
}
