package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bookshelf/backend/internal/domain/shared"
	infraconfig "github.com/bookshelf/backend/internal/infrastructure/config"
	"golang.org/x/oauth2"
)

// TokenStore persists OAuth tokens across restarts
type TokenStore interface {
	// Load returns the stored token, or a NOT_FOUND domain error when no
	// consent has been granted yet
	Load(ctx context.Context) (*oauth2.Token, error)

	// Store saves the token, replacing any previous one
	Store(ctx context.Context, token *oauth2.Token) error
}

// CredentialProvider hands out valid access tokens. Returned tokens are
// snapshots; callers must not rely on them staying fresh.
type CredentialProvider interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}

// OAuthCredentials implements CredentialProvider on top of an authorization
// code flow. Refreshed tokens are written back to the store so the refresh
// survives restarts.
type OAuthCredentials struct {
	config *oauth2.Config
	store  TokenStore

	mu sync.Mutex
}

// NewOAuthCredentials builds the OAuth flow from drive configuration
func NewOAuthCredentials(cfg *infraconfig.DriveConfig, store TokenStore) (*OAuthCredentials, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("drive client credentials are required")
	}

	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = "https://accounts.google.com/o/oauth2/auth"
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = "https://oauth2.googleapis.com/token"
	}
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{"https://www.googleapis.com/auth/drive.file"}
	}

	return &OAuthCredentials{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
		store: store,
	}, nil
}

// AuthCodeURL returns the consent page URL for the given state
func (c *OAuthCredentials) AuthCodeURL(state string) string {
	return c.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades an authorization code for a token and persists it
func (c *OAuthCredentials) Exchange(ctx context.Context, code string) error {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Store(ctx, token)
}

// Token returns a valid token snapshot, refreshing and persisting when the
// stored token has expired
func (c *OAuthCredentials) Token(ctx context.Context) (*oauth2.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, err := c.store.Load(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNoCredentials
		}
		return nil, err
	}

	if stored.Valid() {
		snapshot := *stored
		return &snapshot, nil
	}

	refreshed, err := c.config.TokenSource(ctx, stored).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	if refreshed.AccessToken != stored.AccessToken {
		if err := c.store.Store(ctx, refreshed); err != nil {
			return nil, err
		}
	}

	snapshot := *refreshed
	return &snapshot, nil
}
