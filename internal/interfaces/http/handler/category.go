package handler

import (
	libraryapp "github.com/bookshelf/backend/internal/application/library"
	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the flat category routes
type CategoryHandler struct {
	BaseHandler
	categories *libraryapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categories *libraryapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// RegisterRoutes registers category routes
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.List)
	rg.POST("/categories", h.Create)
}

type createCategoryJSON struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create handles POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var body createCategoryJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		h.ValidationError(c, "Category name is required")
		return
	}

	category, err := h.categories.Create(c.Request.Context(), body.Name, body.Description)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, category)
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, categories, int64(len(categories)))
}
