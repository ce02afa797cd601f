package library

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookshelf/backend/internal/domain/identity"
	"github.com/bookshelf/backend/internal/domain/library"
	"github.com/bookshelf/backend/internal/domain/shared"
	"github.com/bookshelf/backend/internal/domain/social"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BookService handles the book lifecycle: submission with asset uploads,
// edits with the pending->approved notification trigger, listings and the
// blunt bulk operations behind the maintenance routes.
type BookService struct {
	books         library.BookRepository
	authors       library.AuthorRepository
	users         identity.UserRepository
	notifications social.NotificationRepository
	storage       ObjectStorage
	logger        *zap.Logger
}

// NewBookService creates a new BookService
func NewBookService(
	books library.BookRepository,
	authors library.AuthorRepository,
	users identity.UserRepository,
	notifications social.NotificationRepository,
	storage ObjectStorage,
	logger *zap.Logger,
) *BookService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookService{
		books:         books,
		authors:       authors,
		users:         users,
		notifications: notifications,
		storage:       storage,
		logger:        logger,
	}
}

// Create validates the submission, uploads both assets and persists a pending
// book. The two uploads run sequentially; if the cover upload fails after the
// PDF succeeded the PDF blob is orphaned and no book is stored. That partial
// state is accepted, the orphan is only logged.
func (s *BookService) Create(ctx context.Context, req CreateBookRequest) (*library.Book, error) {
	if req.Title == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Book title is required")
	}
	if len(req.PDF) == 0 || len(req.CoverImage) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Both PDF and cover image are required")
	}

	book, err := library.NewBook(req.Title, req.CreatedBy)
	if err != nil {
		return nil, err
	}
	book.AuthorName = req.AuthorName
	book.Description = req.Description
	book.Language = req.Language
	if len(req.Tags) > 0 {
		book.Tags = req.Tags
	}
	if req.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid category ID format")
		}
		book.Category = &categoryID
	}

	pdfKey := fmt.Sprintf("books/%s.pdf", uuid.NewString())
	pdfURL, err := s.storage.Upload(ctx, pdfKey, req.PDF, "application/pdf")
	if err != nil {
		return nil, shared.NewDomainError("UPSTREAM_FAILURE", "PDF upload failed")
	}

	coverKey := fmt.Sprintf("covers/%s.jpg", uuid.NewString())
	coverURL, err := s.storage.Upload(ctx, coverKey, req.CoverImage, "image/jpeg")
	if err != nil {
		s.logger.Warn("cover upload failed after PDF succeeded, blob orphaned",
			zap.String("title", req.Title),
			zap.String("orphanedKey", pdfKey),
			zap.Error(err))
		return nil, shared.NewDomainError("UPSTREAM_FAILURE", "Cover image upload failed")
	}

	book.PDFURL = pdfURL
	book.CoverImageURL = coverURL

	if err := s.books.Save(ctx, book); err != nil {
		s.logger.Warn("book persist failed after uploads, blobs orphaned",
			zap.String("title", req.Title),
			zap.Strings("orphanedKeys", []string{pdfKey, coverKey}),
			zap.Error(err))
		return nil, err
	}

	s.notifySubmission(ctx, book)

	return book, nil
}

// Update applies a partial edit. The pending->approved boundary is detected
// against the state read at the start of this call; crossing it persists
// exactly one approval notification to the creator. pending->rejected and
// edits that do not cross the boundary fire nothing.
func (s *BookService) Update(ctx context.Context, id primitive.ObjectID, req UpdateBookRequest) (*library.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	wasPending := book.IsPending()

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.Language != nil {
		book.Language = *req.Language
	}
	if req.Tags != nil {
		book.Tags = *req.Tags
	}
	if req.Rating != nil {
		book.Rating = *req.Rating
	}
	if req.Review != nil {
		book.Review = *req.Review
	}
	if req.PublishedDate != nil {
		book.PublishedDate = *req.PublishedDate
	}
	if req.Status != nil {
		if err := book.SetStatus(library.BookStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	book.Touch()

	if err := s.books.Save(ctx, book); err != nil {
		return nil, err
	}

	if wasPending && book.Status == library.BookStatusApproved {
		s.notifyApproval(ctx, book)
	}

	return book, nil
}

// List returns all books with the total count
func (s *BookService) List(ctx context.Context, filter shared.Filter) ([]BookListItem, int64, error) {
	books, err := s.books.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.books.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	names, err := s.authorNames(ctx, books)
	if err != nil {
		return nil, 0, err
	}

	items := make([]BookListItem, len(books))
	for i := range books {
		items[i] = toBookListItem(&books[i], lookupName(names, books[i].Author))
	}
	return items, total, nil
}

// ListForUser returns all books annotated with the user's favorite flags
func (s *BookService) ListForUser(ctx context.Context, email string) ([]BookListItem, int64, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, 0, err
	}

	items, total, err := s.List(ctx, shared.Filter{})
	if err != nil {
		return nil, 0, err
	}

	for i := range items {
		bookID, err := primitive.ObjectIDFromHex(items[i].ID)
		if err != nil {
			continue
		}
		items[i].IsFavorite = user.IsFavorite(bookID)
	}
	return items, total, nil
}

// Get returns a single book
func (s *BookService) Get(ctx context.Context, id primitive.ObjectID) (*library.Book, error) {
	return s.books.FindByID(ctx, id)
}

// Delete removes a single book
func (s *BookService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.books.FindByID(ctx, id); err != nil {
		return err
	}
	return s.books.Delete(ctx, id)
}

// DeleteAll removes every book and returns the number deleted
func (s *BookService) DeleteAll(ctx context.Context) (int64, error) {
	return s.books.DeleteAll(ctx)
}

// ApproveAll sets status=approved on every book regardless of its current
// state. Unlike the single-edit path it fires no notifications; mass approval
// is silent.
func (s *BookService) ApproveAll(ctx context.Context) (int64, error) {
	return s.books.UpdateStatusAll(ctx, library.BookStatusApproved)
}

// notifySubmission stores a newBook notification for the creator. Failures
// never fail the submission.
func (s *BookService) notifySubmission(ctx context.Context, book *library.Book) {
	creator, err := s.resolveCreator(ctx, book.CreatedBy)
	if err != nil {
		s.logger.Debug("submission notification skipped, creator not resolvable",
			zap.String("createdBy", book.CreatedBy))
		return
	}
	n := social.NewBookNotification(creator.ID, book.ID, book.Title)
	if err := s.notifications.Save(ctx, n); err != nil {
		s.logger.Warn("failed to store submission notification", zap.Error(err))
	}
}

// notifyApproval stores the single approval notification for the creator
func (s *BookService) notifyApproval(ctx context.Context, book *library.Book) {
	creator, err := s.resolveCreator(ctx, book.CreatedBy)
	if err != nil {
		s.logger.Warn("approval notification skipped, creator not resolvable",
			zap.String("bookId", book.ID.Hex()),
			zap.String("createdBy", book.CreatedBy))
		return
	}
	n := social.NewBookApprovedNotification(creator.ID, book.ID, book.Title)
	if err := s.notifications.Save(ctx, n); err != nil {
		s.logger.Warn("failed to store approval notification",
			zap.String("bookId", book.ID.Hex()),
			zap.Error(err))
	}
}

// resolveCreator maps the free-form createdBy field to a user: first as an
// email, then as a user id in hex form.
func (s *BookService) resolveCreator(ctx context.Context, createdBy string) (*identity.User, error) {
	if createdBy == "" {
		return nil, shared.ErrNotFound
	}
	user, err := s.users.FindByEmail(ctx, createdBy)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	id, parseErr := primitive.ObjectIDFromHex(createdBy)
	if parseErr != nil {
		return nil, shared.ErrNotFound
	}
	return s.users.FindByID(ctx, id)
}

// authorNames resolves the display name for every referenced author in one
// batch lookup
func (s *BookService) authorNames(ctx context.Context, books []library.Book) (map[primitive.ObjectID]string, error) {
	ids := make([]primitive.ObjectID, 0, len(books))
	seen := make(map[primitive.ObjectID]struct{}, len(books))
	for i := range books {
		if books[i].Author == nil {
			continue
		}
		if _, ok := seen[*books[i].Author]; ok {
			continue
		}
		seen[*books[i].Author] = struct{}{}
		ids = append(ids, *books[i].Author)
	}
	if len(ids) == 0 {
		return map[primitive.ObjectID]string{}, nil
	}

	authors, err := s.authors.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[primitive.ObjectID]string, len(authors))
	for i := range authors {
		names[authors[i].ID] = authors[i].Name
	}
	return names, nil
}

func lookupName(names map[primitive.ObjectID]string, id *primitive.ObjectID) string {
	if id == nil {
		return ""
	}
	return names[*id]
}
