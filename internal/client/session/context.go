package session

import "context"

type ctxKey struct{}

// NewContext attaches s to ctx.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the store attached to ctx, if any.
func FromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Store)
	return s, ok && s != nil
}

// TokenSource resolves the bearer token for an outbound request. It prefers
// the store found on the request context and otherwise reads the persisted
// token, which covers code running outside a session scope.
type TokenSource struct {
	storage Storage
}

func NewTokenSource(storage Storage) *TokenSource {
	return &TokenSource{storage: storage}
}

func (t *TokenSource) Token(ctx context.Context) (string, error) {
	if s, ok := FromContext(ctx); ok {
		return s.Token(), nil
	}
	token, _, err := t.storage.Load(ctx)
	return token, err
}
