package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	s := NewStore(&fakeStorage{}, nil)
	got, ok := FromContext(NewContext(context.Background(), s))
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = FromContext(NewContext(context.Background(), nil))
	assert.False(t, ok)
}

func TestTokenSource_PrefersStoreOnContext(t *testing.T) {
	fs := &fakeStorage{token: "persisted", userData: []byte(`{}`)}
	s := NewStore(&fakeStorage{}, nil)
	require.NoError(t, s.SetAuth(context.Background(), "in-memory", sampleUser()))

	src := NewTokenSource(fs)

	tok, err := src.Token(NewContext(context.Background(), s))
	require.NoError(t, err)
	assert.Equal(t, "in-memory", tok)

	tok, err = src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "persisted", tok)
}
