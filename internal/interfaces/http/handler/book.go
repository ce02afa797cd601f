package handler

import (
	"encoding/base64"
	"io"
	"mime/multipart"
	"strings"
	"time"

	libraryapp "github.com/bookshelf/backend/internal/application/library"
	"github.com/bookshelf/backend/internal/domain/shared"
	"github.com/bookshelf/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BookHandler serves the book CRUD surface
type BookHandler struct {
	BaseHandler
	books  *libraryapp.BookService
	logger *zap.Logger
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(books *libraryapp.BookService, logger *zap.Logger) *BookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookHandler{books: books, logger: logger}
}

// RegisterRoutes registers book routes. The legacy paths are bound by the
// consumer front end and must not change.
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/books", h.Create)
	rg.GET("/books", h.List)
	rg.GET("/get-books", h.List)
	rg.GET("/get-books/:email", h.ListForUser)
	rg.PATCH("/edit-book/:id", h.Update)
	rg.DELETE("/delete-book/:id", h.Delete)
}

// createBookJSON is the JSON form of a submission: both assets arrive base64
// encoded inline
type createBookJSON struct {
	Title       string   `json:"title" binding:"required"`
	Author      string   `json:"author"`
	CreatedBy   string   `json:"createdBy"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	PDF         string   `json:"pdf" binding:"required"`
	CoverImage  string   `json:"coverImage" binding:"required"`
}

// updateBookJSON is a partial edit; absent fields stay untouched
type updateBookJSON struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Language      *string    `json:"language"`
	Tags          *[]string  `json:"tags"`
	Rating        *float64   `json:"rating"`
	Review        *string    `json:"review"`
	PublishedDate *time.Time `json:"publishedDate"`
	Status        *string    `json:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// Create handles POST /books. Multipart submissions carry the assets as file
// parts, JSON submissions as base64 fields.
func (h *BookHandler) Create(c *gin.Context) {
	req, ok := h.bindCreate(c)
	if !ok {
		return
	}

	book, err := h.books.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, book)
}

func (h *BookHandler) bindCreate(c *gin.Context) (libraryapp.CreateBookRequest, bool) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return h.bindCreateMultipart(c)
	}

	var body createBookJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		h.ValidationError(c, "Title, pdf and coverImage are required")
		return libraryapp.CreateBookRequest{}, false
	}

	pdf, err := base64.StdEncoding.DecodeString(body.PDF)
	if err != nil {
		h.ValidationError(c, "pdf must be base64 encoded")
		return libraryapp.CreateBookRequest{}, false
	}
	cover, err := base64.StdEncoding.DecodeString(body.CoverImage)
	if err != nil {
		h.ValidationError(c, "coverImage must be base64 encoded")
		return libraryapp.CreateBookRequest{}, false
	}

	return libraryapp.CreateBookRequest{
		Title:       body.Title,
		AuthorName:  body.Author,
		CreatedBy:   body.CreatedBy,
		Description: body.Description,
		Language:    body.Language,
		Tags:        body.Tags,
		CategoryID:  body.Category,
		PDF:         pdf,
		CoverImage:  cover,
	}, true
}

func (h *BookHandler) bindCreateMultipart(c *gin.Context) (libraryapp.CreateBookRequest, bool) {
	pdf, ok := h.readFilePart(c, "pdf")
	if !ok {
		return libraryapp.CreateBookRequest{}, false
	}
	cover, ok := h.readFilePart(c, "coverImage")
	if !ok {
		return libraryapp.CreateBookRequest{}, false
	}

	var tags []string
	if raw := c.PostForm("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	return libraryapp.CreateBookRequest{
		Title:       c.PostForm("title"),
		AuthorName:  c.PostForm("author"),
		CreatedBy:   c.PostForm("createdBy"),
		Description: c.PostForm("description"),
		Language:    c.PostForm("language"),
		Tags:        tags,
		CategoryID:  c.PostForm("category"),
		PDF:         pdf,
		CoverImage:  cover,
	}, true
}

func (h *BookHandler) readFilePart(c *gin.Context, field string) ([]byte, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		h.ValidationError(c, "Missing file part: "+field)
		return nil, false
	}
	data, err := readMultipartFile(fileHeader)
	if err != nil {
		h.logger.Warn("failed to read uploaded file",
			zap.String("field", field),
			zap.Error(err))
		h.BadRequest(c, "Unreadable file part: "+field)
		return nil, false
	}
	return data, true
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// List handles GET /get-books
func (h *BookHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters")
		return
	}

	items, total, err := h.books.List(c.Request.Context(), shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, items, total)
}

// ListForUser handles GET /get-books/:email
func (h *BookHandler) ListForUser(c *gin.Context) {
	email := c.Param("email")
	items, total, err := h.books.ListForUser(c.Request.Context(), email)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, items, total)
}

// Update handles PATCH /edit-book/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid book ID format")
		return
	}

	var body updateBookJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		h.ValidationError(c, "Invalid edit payload")
		return
	}

	book, err := h.books.Update(c.Request.Context(), id, libraryapp.UpdateBookRequest{
		Title:         body.Title,
		Description:   body.Description,
		Language:      body.Language,
		Tags:          body.Tags,
		Rating:        body.Rating,
		Review:        body.Review,
		PublishedDate: body.PublishedDate,
		Status:        body.Status,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, book)
}

// Delete handles DELETE /delete-book/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid book ID format")
		return
	}
	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"deleted": true})
}
