package handler

import (
	"time"

	identityapp "github.com/bookshelf/backend/internal/application/identity"
	"github.com/bookshelf/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler serves registration, profile and favorites routes
type UserHandler struct {
	BaseHandler
	users *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users *identityapp.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterRoutes registers user routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/users", h.Register)
	rg.GET("/users", h.List)
	rg.GET("/users/:email", h.Get)
	rg.PATCH("/users/:email", h.UpdateProfile)
	rg.PATCH("/favorite-books-for-user", h.ToggleFavorite)
}

type registerUserJSON struct {
	Username       string `json:"username"`
	Email          string `json:"email" binding:"required,email"`
	ProfilePicture string `json:"profilePicture"`
}

type updateProfileJSON struct {
	Name           string     `json:"name"`
	ProfilePicture string     `json:"profilePicture"`
	Gender         string     `json:"gender"`
	DateOfBirth    *time.Time `json:"dateOfBirth"`
	Nationality    string     `json:"nationality"`
	Bio            string     `json:"bio"`
	IsPrivate      *bool      `json:"isPrivate"`
}

type toggleFavoriteJSON struct {
	Email  string `json:"email" binding:"required,email"`
	BookID string `json:"bookId" binding:"required,objectid"`
}

// Register handles POST /users. An existing email returns the stored user
// with 200; a new one is created and returned with 201.
func (h *UserHandler) Register(c *gin.Context) {
	var body registerUserJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		h.ValidationError(c, "A valid email is required")
		return
	}

	result, err := h.users.Register(c.Request.Context(), identityapp.RegisterUserRequest{
		Username:       body.Username,
		Email:          body.Email,
		ProfilePicture: body.ProfilePicture,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if result.Created {
		h.Created(c, result.User)
		return
	}
	h.Success(c, result.User)
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, users, int64(len(users)))
}

// Get handles GET /users/:email
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, user)
}

// UpdateProfile handles PATCH /users/:email
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var body updateProfileJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		h.ValidationError(c, "Invalid profile payload")
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), c.Param("email"), identity.Profile{
		Name:           body.Name,
		ProfilePicture: body.ProfilePicture,
		Gender:         body.Gender,
		DateOfBirth:    body.DateOfBirth,
		Nationality:    body.Nationality,
		Bio:            body.Bio,
	}, body.IsPrivate)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, user)
}

// ToggleFavorite handles PATCH /favorite-books-for-user
func (h *UserHandler) ToggleFavorite(c *gin.Context) {
	var body toggleFavoriteJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		h.ValidationError(c, "email and bookId are required")
		return
	}

	bookID, err := primitive.ObjectIDFromHex(body.BookID)
	if err != nil {
		h.BadRequest(c, "Invalid book ID format")
		return
	}

	user, added, err := h.users.ToggleFavorite(c.Request.Context(), body.Email, bookID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{
		"favoriteBooks": user.FavoriteBooks,
		"added":         added,
	})
}
