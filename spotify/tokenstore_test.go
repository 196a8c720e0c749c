package spotify

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestStore(t *testing.T) *TokenStore {
	t.Helper()
	store, err := NewTokenStore(filepath.Join(t.TempDir(), "tokens.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestTokenStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	expiry := time.Now().Add(1 * time.Hour).Truncate(time.Second)
	token := &oauth2.Token{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TokenType:    "Bearer",
		Expiry:       expiry,
	}

	require.NoError(t, store.Save(ctx, "client-a", token))

	loaded, err := store.Load(ctx, "client-a")
	require.NoError(t, err)
	assert.Equal(t, token.AccessToken, loaded.AccessToken)
	assert.Equal(t, token.RefreshToken, loaded.RefreshToken)
	assert.Equal(t, token.TokenType, loaded.TokenType)
	assert.True(t, loaded.Expiry.Equal(expiry), "expiry %v != %v", loaded.Expiry, expiry)
}

func TestTokenStoreOverwrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := &oauth2.Token{AccessToken: "old", RefreshToken: "r", TokenType: "Bearer", Expiry: time.Now()}
	second := &oauth2.Token{AccessToken: "new", RefreshToken: "r2", TokenType: "Bearer", Expiry: time.Now().Add(time.Hour)}

	require.NoError(t, store.Save(ctx, "client-a", first))
	require.NoError(t, store.Save(ctx, "client-a", second))

	loaded, err := store.Load(ctx, "client-a")
	require.NoError(t, err)
	assert.Equal(t, "new", loaded.AccessToken)
	assert.Equal(t, "r2", loaded.RefreshToken)
}

func TestTokenStoreMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load(context.Background(), "never-authorized")
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestTokenStorePerClient(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "client-a", &oauth2.Token{AccessToken: "a", RefreshToken: "ra", TokenType: "Bearer", Expiry: time.Now()}))
	require.NoError(t, store.Save(ctx, "client-b", &oauth2.Token{AccessToken: "b", RefreshToken: "rb", TokenType: "Bearer", Expiry: time.Now()}))

	a, err := store.Load(ctx, "client-a")
	require.NoError(t, err)
	b, err := store.Load(ctx, "client-b")
	require.NoError(t, err)

	assert.Equal(t, "a", a.AccessToken)
	assert.Equal(t, "b", b.AccessToken)
}
