package handler

import (
	socialapp "github.com/bookshelf/backend/internal/application/social"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FriendHandler serves the friend request routes
type FriendHandler struct {
	BaseHandler
	friends *socialapp.FriendService
}

// NewFriendHandler creates a new FriendHandler
func NewFriendHandler(friends *socialapp.FriendService) *FriendHandler {
	return &FriendHandler{friends: friends}
}

// RegisterRoutes registers friend request routes
func (h *FriendHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/send-friend-request", h.Send)
	rg.POST("/check-friend-request-status", h.Status)
	rg.PATCH("/respond-friend-request", h.Respond)
	rg.GET("/friend-requests/:email", h.ListForUser)
}

type friendPairJSON struct {
	RequesterEmail string `json:"requesterEmail" binding:"required,email"`
	RecipientEmail string `json:"recipientEmail" binding:"required,email"`
}

type respondRequestJSON struct {
	RequestID string `json:"requestId" binding:"required,objectid"`
	Accept    bool   `json:"accept"`
}

// Send handles POST /send-friend-request
func (h *FriendHandler) Send(c *gin.Context) {
	var body friendPairJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		h.ValidationError(c, "requesterEmail and recipientEmail are required")
		return
	}

	request, err := h.friends.Send(c.Request.Context(), body.RequesterEmail, body.RecipientEmail)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, request)
}

// Status handles POST /check-friend-request-status
func (h *FriendHandler) Status(c *gin.Context) {
	var body friendPairJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		h.ValidationError(c, "requesterEmail and recipientEmail are required")
		return
	}

	status, err := h.friends.Status(c.Request.Context(), body.RequesterEmail, body.RecipientEmail)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"status": status})
}

// Respond handles PATCH /respond-friend-request
func (h *FriendHandler) Respond(c *gin.Context) {
	var body respondRequestJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		h.ValidationError(c, "requestId is required")
		return
	}

	requestID, err := primitive.ObjectIDFromHex(body.RequestID)
	if err != nil {
		h.BadRequest(c, "Invalid request ID format")
		return
	}

	request, err := h.friends.Respond(c.Request.Context(), requestID, body.Accept)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, request)
}

// ListForUser handles GET /friend-requests/:email
func (h *FriendHandler) ListForUser(c *gin.Context) {
	views, err := h.friends.ListForUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, views, int64(len(views)))
}
