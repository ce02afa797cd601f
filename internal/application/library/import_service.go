package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/bookshelf/backend/internal/domain/library"
	"github.com/bookshelf/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportService bulk-imports a directory tree of PDFs laid out as
// <root>/<author name>/<title>.pdf. The walk is an explicit iterative work
// queue rather than recursion, so a run can be cancelled between items via
// the context and restarted later; the (title, author) dedupe check makes the
// restart skip everything already imported.
type ImportService struct {
	books   library.BookRepository
	storage ObjectStorage
	logger  *zap.Logger
}

// NewImportService creates a new ImportService
func NewImportService(books library.BookRepository, storage ObjectStorage, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{
		books:   books,
		storage: storage,
		logger:  logger,
	}
}

type importEntry struct {
	path   string
	author string
}

// Run walks the tree under root and imports every PDF. Item errors are
// logged and counted, they never abort the run; only context cancellation or
// an unreadable root stops it.
func (s *ImportService) Run(ctx context.Context, root string) (*ImportReport, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Import directory is not readable: "+root)
	}

	report := &ImportReport{}
	queue := []importEntry{{path: root}}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			s.logger.Info("import cancelled",
				zap.Int("filesSeen", report.FilesSeen),
				zap.Int("uploaded", report.Uploaded))
			return report, err
		}

		entry := queue[0]
		queue = queue[1:]

		dirents, err := os.ReadDir(entry.path)
		if err != nil {
			report.Failures++
			s.logger.Warn("unreadable directory skipped", zap.String("path", entry.path), zap.Error(err))
			continue
		}

		for _, d := range dirents {
			childPath := filepath.Join(entry.path, d.Name())
			if d.IsDir() {
				// Subdirectory names become the author attribution.
				queue = append(queue, importEntry{path: childPath, author: d.Name()})
				continue
			}
			if !strings.EqualFold(filepath.Ext(d.Name()), ".pdf") {
				continue
			}
			report.FilesSeen++
			s.importFile(ctx, childPath, d.Name(), entry.author, report)
		}
	}

	s.logger.Info("import finished",
		zap.Int("filesSeen", report.FilesSeen),
		zap.Int("uploaded", report.Uploaded),
		zap.Int("skipped", report.Skipped),
		zap.Int("failures", report.Failures))
	return report, nil
}

func (s *ImportService) importFile(ctx context.Context, path, fileName, author string, report *ImportReport) {
	existing, err := s.books.FindByTitleAndAuthorName(ctx, fileName, author)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		report.Failures++
		s.logger.Warn("dedupe lookup failed", zap.String("file", fileName), zap.Error(err))
		return
	}
	if existing != nil {
		report.Skipped++
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		report.Failures++
		s.logger.Warn("unreadable file skipped", zap.String("path", path), zap.Error(err))
		return
	}

	key := "books/" + uuid.NewString() + ".pdf"
	url, err := s.storage.Upload(ctx, key, data, "application/pdf")
	if err != nil {
		report.Failures++
		s.logger.Warn("upload failed", zap.String("file", fileName), zap.Error(err))
		return
	}

	book, err := library.NewBook(fileName, "")
	if err != nil {
		report.Failures++
		return
	}
	book.AuthorName = author
	book.PDFURL = url
	book.Rating = 5.0

	if err := s.books.Save(ctx, book); err != nil {
		report.Failures++
		s.logger.Warn("failed to persist imported book", zap.String("file", fileName), zap.Error(err))
		return
	}
	report.Uploaded++
}
