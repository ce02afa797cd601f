package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bookshelf/backend/internal/domain/shared"
	infraconfig "github.com/bookshelf/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type fakeTokenStore struct {
	token *oauth2.Token
}

func (s *fakeTokenStore) Load(context.Context) (*oauth2.Token, error) {
	if s.token == nil {
		return nil, shared.ErrNotFound
	}
	return s.token, nil
}

func (s *fakeTokenStore) Store(_ context.Context, token *oauth2.Token) error {
	s.token = token
	return nil
}

func newTestCredentials(t *testing.T, store TokenStore, tokenURL string) *OAuthCredentials {
	t.Helper()
	creds, err := NewOAuthCredentials(&infraconfig.DriveConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:5001/auth/drive/redirect",
		TokenURL:     tokenURL,
	}, store)
	require.NoError(t, err)
	return creds
}

func TestNewOAuthCredentials_RequiresClient(t *testing.T) {
	_, err := NewOAuthCredentials(&infraconfig.DriveConfig{}, &fakeTokenStore{})
	assert.Error(t, err)
}

func TestOAuthCredentials_AuthCodeURL(t *testing.T) {
	creds := newTestCredentials(t, &fakeTokenStore{}, "")

	url := creds.AuthCodeURL("state-123")

	assert.Contains(t, url, "access_type=offline")
	assert.Contains(t, url, "prompt=consent")
	assert.Contains(t, url, "state=state-123")
}

func TestOAuthCredentials_Token_NoConsent(t *testing.T) {
	creds := newTestCredentials(t, &fakeTokenStore{}, "")

	_, err := creds.Token(context.Background())

	assert.ErrorIs(t, err, shared.ErrNoCredentials)
}

func TestOAuthCredentials_Token_ValidSnapshot(t *testing.T) {
	store := &fakeTokenStore{token: &oauth2.Token{
		AccessToken: "fresh",
		Expiry:      time.Now().Add(time.Hour),
	}}
	creds := newTestCredentials(t, store, "")

	token, err := creds.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "fresh", token.AccessToken)

	// Mutating the snapshot must not touch the stored token.
	token.AccessToken = "clobbered"
	assert.Equal(t, "fresh", store.token.AccessToken)
}

func TestOAuthCredentials_Token_RefreshPersists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "refresh-me", r.Form.Get("refresh_token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"renewed","token_type":"Bearer","expires_in":3600}`))
	}))
	defer server.Close()

	store := &fakeTokenStore{token: &oauth2.Token{
		AccessToken:  "stale",
		RefreshToken: "refresh-me",
		Expiry:       time.Now().Add(-time.Hour),
	}}
	creds := newTestCredentials(t, store, server.URL)

	token, err := creds.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "renewed", token.AccessToken)
	assert.Equal(t, "renewed", store.token.AccessToken)
}
