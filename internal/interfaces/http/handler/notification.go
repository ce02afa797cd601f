package handler

import (
	socialapp "github.com/bookshelf/backend/internal/application/social"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationHandler serves the notification feed routes
type NotificationHandler struct {
	BaseHandler
	notifications *socialapp.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifications *socialapp.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// RegisterRoutes registers notification routes
func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/get-notifications/:email", h.ListForUser)
	rg.PATCH("/notifications/read/:id", h.MarkRead)
}

// ListForUser handles GET /get-notifications/:email
func (h *NotificationHandler) ListForUser(c *gin.Context) {
	views, err := h.notifications.ListForUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, views, int64(len(views)))
}

// MarkRead handles PATCH /notifications/read/:id
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid notification ID format")
		return
	}

	notification, err := h.notifications.MarkRead(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, notification)
}
