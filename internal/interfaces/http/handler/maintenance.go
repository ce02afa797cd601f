package handler

import (
	"context"
	"time"

	libraryapp "github.com/bookshelf/backend/internal/application/library"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sweepTimeout bounds a detached maintenance sweep; a wedged storage backend
// must not leak goroutines forever.
const sweepTimeout = 30 * time.Minute

// MaintenanceHandler serves the operator sweep routes. Every sweep runs in a
// detached goroutine and the request is answered immediately with an
// acknowledgement; results land in the logs.
type MaintenanceHandler struct {
	BaseHandler
	books     *libraryapp.BookService
	authors   *libraryapp.AuthorService
	importer  *libraryapp.ImportService
	importDir string
	logger    *zap.Logger
}

// NewMaintenanceHandler creates a new MaintenanceHandler
func NewMaintenanceHandler(
	books *libraryapp.BookService,
	authors *libraryapp.AuthorService,
	importer *libraryapp.ImportService,
	importDir string,
	logger *zap.Logger,
) *MaintenanceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaintenanceHandler{
		books:     books,
		authors:   authors,
		importer:  importer,
		importDir: importDir,
		logger:    logger,
	}
}

// RegisterRoutes registers the maintenance routes. GET is historical; the
// consumer tooling triggers these from a browser address bar.
func (h *MaintenanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/migrate-authors", h.LinkAuthors)
	rg.GET("/link-authors", h.LinkAuthors)
	rg.GET("/assign-books-to-authors", h.RebuildBookRefs)
	rg.GET("/get-duplicate-authors", h.DuplicateAuthors)
	rg.GET("/upload-books", h.ImportBooks)
	rg.GET("/delete-books", h.DeleteBooks)
	rg.GET("/approve-all-books", h.ApproveAllBooks)
}

// LinkAuthors handles GET /link-authors and its legacy alias /migrate-authors
func (h *MaintenanceHandler) LinkAuthors(c *gin.Context) {
	h.spawn("author linking", func(ctx context.Context) error {
		_, err := h.authors.LinkAuthors(ctx)
		return err
	})
	c.String(200, "Author linking started")
}

// RebuildBookRefs handles GET /assign-books-to-authors
func (h *MaintenanceHandler) RebuildBookRefs(c *gin.Context) {
	h.spawn("author back-reference rebuild", func(ctx context.Context) error {
		_, err := h.authors.RebuildBookRefs(ctx)
		return err
	})
	c.String(200, "Author book assignment started")
}

// DuplicateAuthors handles GET /get-duplicate-authors. Unlike the sweeps this
// is a read-only report, so it answers synchronously with the data.
func (h *MaintenanceHandler) DuplicateAuthors(c *gin.Context) {
	groups, err := h.authors.DuplicateAuthors(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, groups, int64(len(groups)))
}

// ImportBooks handles GET /upload-books
func (h *MaintenanceHandler) ImportBooks(c *gin.Context) {
	dir := h.importDir
	h.spawn("bulk import", func(ctx context.Context) error {
		_, err := h.importer.Run(ctx, dir)
		return err
	})
	c.String(200, "Book import started")
}

// DeleteBooks handles GET /delete-books
func (h *MaintenanceHandler) DeleteBooks(c *gin.Context) {
	h.spawn("bulk delete", func(ctx context.Context) error {
		_, err := h.books.DeleteAll(ctx)
		return err
	})
	c.String(200, "Book deletion started")
}

// ApproveAllBooks handles GET /approve-all-books
func (h *MaintenanceHandler) ApproveAllBooks(c *gin.Context) {
	h.spawn("bulk approval", func(ctx context.Context) error {
		_, err := h.books.ApproveAll(ctx)
		return err
	})
	c.String(200, "Book approval started")
}

// spawn runs the sweep detached from the request context so the client
// disconnecting does not cancel it
func (h *MaintenanceHandler) spawn(name string, run func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		start := time.Now()
		if err := run(ctx); err != nil {
			h.logger.Error("maintenance sweep failed",
				zap.String("sweep", name),
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err))
			return
		}
		h.logger.Info("maintenance sweep finished",
			zap.String("sweep", name),
			zap.Duration("elapsed", time.Since(start)))
	}()
}
