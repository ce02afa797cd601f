package handler

import (
	"net/http"

	"github.com/bookshelf/backend/internal/infrastructure/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthHandler serves the storage provider consent flow
type AuthHandler struct {
	BaseHandler
	creds  *storage.OAuthCredentials
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(creds *storage.OAuthCredentials, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{creds: creds, logger: logger}
}

// RegisterRoutes registers the consent flow routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/drive", h.Consent)
	rg.GET("/auth/drive/redirect", h.Redirect)
}

// Consent handles GET /auth/drive, redirecting to the provider consent page
func (h *AuthHandler) Consent(c *gin.Context) {
	c.Redirect(http.StatusFound, h.creds.AuthCodeURL(uuid.NewString()))
}

// Redirect handles GET /auth/drive/redirect?code=, trading the authorization
// code for a token and persisting it
func (h *AuthHandler) Redirect(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		h.BadRequest(c, "Missing authorization code")
		return
	}

	if err := h.creds.Exchange(c.Request.Context(), code); err != nil {
		h.logger.Warn("authorization code exchange failed", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}
	c.String(200, "Authenticated")
}
