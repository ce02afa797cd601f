package library

import (
	"context"
	"errors"

	"github.com/bookshelf/backend/internal/domain/library"
	"github.com/bookshelf/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// AuthorService owns the batch reconciliation sweeps: linking free-text
// author names to canonical Author documents, reporting duplicate names and
// rebuilding the Author.books back-reference sets.
type AuthorService struct {
	authors library.AuthorRepository
	books   library.BookRepository
	logger  *zap.Logger
}

// NewAuthorService creates a new AuthorService
func NewAuthorService(authors library.AuthorRepository, books library.BookRepository, logger *zap.Logger) *AuthorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthorService{
		authors: authors,
		books:   books,
		logger:  logger,
	}
}

// LinkAuthors sweeps every book still carrying a free-text author name,
// resolves the name to an Author document by exact match (creating one on a
// miss) and rewrites the book's author field to the reference. Item failures
// are logged and skipped. Matching applies no trim or case-fold; two sweeps
// racing, or casing variants, can still produce duplicate authors — that is
// the duplicate report's job to surface, not this sweep's to prevent.
func (s *AuthorService) LinkAuthors(ctx context.Context) (*LinkReport, error) {
	books, err := s.books.FindUnlinked(ctx)
	if err != nil {
		return nil, err
	}

	report := &LinkReport{BooksScanned: len(books)}
	for i := range books {
		book := &books[i]
		if book.AuthorName == "" {
			continue
		}

		author, err := s.authors.FindByName(ctx, book.AuthorName)
		if errors.Is(err, shared.ErrNotFound) {
			author, err = library.NewAuthor(book.AuthorName)
			if err == nil {
				err = s.authors.Save(ctx, author)
				if err == nil {
					report.AuthorsCreated++
				}
			}
		}
		if err != nil {
			report.Failures++
			s.logger.Warn("author linking failed for book",
				zap.String("bookId", book.ID.Hex()),
				zap.String("authorName", book.AuthorName),
				zap.Error(err))
			continue
		}

		book.LinkAuthor(author.ID)
		if err := s.books.Save(ctx, book); err != nil {
			report.Failures++
			s.logger.Warn("failed to persist linked book",
				zap.String("bookId", book.ID.Hex()),
				zap.Error(err))
			continue
		}
		report.BooksLinked++
	}

	s.logger.Info("author linking sweep finished",
		zap.Int("scanned", report.BooksScanned),
		zap.Int("linked", report.BooksLinked),
		zap.Int("authorsCreated", report.AuthorsCreated),
		zap.Int("failures", report.Failures))
	return report, nil
}

// DuplicateAuthors reports groups of authors sharing an exact name. It only
// reports; merging is a manual operation.
func (s *AuthorService) DuplicateAuthors(ctx context.Context) ([]library.DuplicateAuthorGroup, error) {
	return s.authors.FindDuplicateNames(ctx)
}

// RebuildBookRefs rebuilds every author's books set from scratch by grouping
// all linked books on their author reference. The set is fully overwritten,
// never appended to, so re-running the sweep is idempotent. Authors no book
// references end up with an empty set.
func (s *AuthorService) RebuildBookRefs(ctx context.Context) (*RebuildReport, error) {
	books, err := s.books.FindLinked(ctx)
	if err != nil {
		return nil, err
	}

	byAuthor := make(map[primitive.ObjectID][]primitive.ObjectID)
	for i := range books {
		byAuthor[*books[i].Author] = append(byAuthor[*books[i].Author], books[i].ID)
	}

	authors, err := s.authors.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}

	report := &RebuildReport{}
	for i := range authors {
		author := &authors[i]
		author.ReplaceBooks(byAuthor[author.ID])
		if err := s.authors.Save(ctx, author); err != nil {
			report.Failures++
			s.logger.Warn("failed to persist rebuilt author",
				zap.String("authorId", author.ID.Hex()),
				zap.Error(err))
			continue
		}
		report.AuthorsUpdated++
	}

	s.logger.Info("author back-reference rebuild finished",
		zap.Int("updated", report.AuthorsUpdated),
		zap.Int("failures", report.Failures))
	return report, nil
}
