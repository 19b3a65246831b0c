package contracts

import "context"

// RestClient is the single chokepoint for every backend call. Out is
// decoded from JSON responses; for non-JSON bodies a *string out receives
// the raw text, and a nil out discards the body.
type RestClient interface {
	Get(ctx context.Context, path string, out interface{}) error
	Post(ctx context.Context, path string, body, out interface{}) error
	Put(ctx context.Context, path string, body, out interface{}) error
	Delete(ctx context.Context, path string, out interface{}) error

	// GetBytes fetches a binary resource (PDF downloads) and returns the
	// content type alongside the payload.
	GetBytes(ctx context.Context, path string) (contentType string, data []byte, err error)
}

// TokenProvider yields the current bearer token, or "" when the caller is
// not authenticated. Implementations must never fail; inability to read a
// token is the same as having none.
type TokenProvider interface {
	CurrentToken() string
}
