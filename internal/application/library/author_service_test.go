package library

import (
	"context"
	"testing"

	"github.com/bookshelf/backend/internal/domain/library"
	"github.com/bookshelf/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAuthorService_LinkAuthors_SharedUnknownAuthor(t *testing.T) {
	books := new(MockBookRepository)
	authors := new(MockAuthorRepository)
	service := NewAuthorService(authors, books, nil)
	ctx := context.Background()

	first, _ := library.NewBook("Dune", "")
	first.AuthorName = "Frank Herbert"
	second, _ := library.NewBook("Dune Messiah", "")
	second.AuthorName = "Frank Herbert"

	books.On("FindUnlinked", ctx).Return([]library.Book{*first, *second}, nil)

	// The first lookup misses and creates the author; the second must resolve
	// to the same document.
	var created *library.Author
	authors.On("FindByName", ctx, "Frank Herbert").Return(nil, shared.ErrNotFound).Once()
	authors.On("Save", ctx, mock.AnythingOfType("*library.Author")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*library.Author)
		authors.On("FindByName", ctx, "Frank Herbert").Return(created, nil)
	}).Return(nil).Once()

	var linked []*library.Book
	books.On("Save", ctx, mock.AnythingOfType("*library.Book")).Run(func(args mock.Arguments) {
		linked = append(linked, args.Get(1).(*library.Book))
	}).Return(nil).Twice()

	report, err := service.LinkAuthors(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, report.BooksScanned)
	assert.Equal(t, 2, report.BooksLinked)
	assert.Equal(t, 1, report.AuthorsCreated)
	assert.Equal(t, 0, report.Failures)

	require.Len(t, linked, 2)
	for _, book := range linked {
		require.NotNil(t, book.Author)
		assert.Equal(t, created.ID, *book.Author)
		assert.Empty(t, book.AuthorName)
	}
}

func TestAuthorService_LinkAuthors_ExactMatchOnly(t *testing.T) {
	books := new(MockBookRepository)
	authors := new(MockAuthorRepository)
	service := NewAuthorService(authors, books, nil)
	ctx := context.Background()

	existing, _ := library.NewAuthor("frank herbert")
	book, _ := library.NewBook("Dune", "")
	book.AuthorName = "Frank Herbert"

	books.On("FindUnlinked", ctx).Return([]library.Book{*book}, nil)
	// Lookup uses the name verbatim; the lowercase author must not match.
	authors.On("FindByName", ctx, "Frank Herbert").Return(nil, shared.ErrNotFound).Once()
	authors.On("Save", ctx, mock.AnythingOfType("*library.Author")).Return(nil).Once()
	books.On("Save", ctx, mock.AnythingOfType("*library.Book")).Return(nil).Once()

	report, err := service.LinkAuthors(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.AuthorsCreated)
	authors.AssertNotCalled(t, "FindByName", ctx, existing.Name)
}

func TestAuthorService_LinkAuthors_ItemFailureContinues(t *testing.T) {
	books := new(MockBookRepository)
	authors := new(MockAuthorRepository)
	service := NewAuthorService(authors, books, nil)
	ctx := context.Background()

	broken, _ := library.NewBook("Dune", "")
	broken.AuthorName = "Frank Herbert"
	fine, _ := library.NewBook("Hyperion", "")
	fine.AuthorName = "Dan Simmons"
	simmons, _ := library.NewAuthor("Dan Simmons")

	books.On("FindUnlinked", ctx).Return([]library.Book{*broken, *fine}, nil)
	authors.On("FindByName", ctx, "Frank Herbert").Return(nil, assert.AnError)
	authors.On("FindByName", ctx, "Dan Simmons").Return(simmons, nil)
	books.On("Save", ctx, mock.MatchedBy(func(b *library.Book) bool {
		return b.Title == "Hyperion"
	})).Return(nil).Once()

	report, err := service.LinkAuthors(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Failures)
	assert.Equal(t, 1, report.BooksLinked)
}

func TestAuthorService_RebuildBookRefs_OverwritesStaleSets(t *testing.T) {
	books := new(MockBookRepository)
	authors := new(MockAuthorRepository)
	service := NewAuthorService(authors, books, nil)
	ctx := context.Background()

	herbert, _ := library.NewAuthor("Frank Herbert")
	stale := primitive.NewObjectID()
	herbert.Books = []primitive.ObjectID{stale}
	simmons, _ := library.NewAuthor("Dan Simmons")
	simmons.Books = []primitive.ObjectID{stale}

	dune, _ := library.NewBook("Dune", "")
	dune.LinkAuthor(herbert.ID)
	messiah, _ := library.NewBook("Dune Messiah", "")
	messiah.LinkAuthor(herbert.ID)

	books.On("FindLinked", ctx).Return([]library.Book{*dune, *messiah}, nil)
	authors.On("FindAll", ctx, shared.Filter{}).Return([]library.Author{*herbert, *simmons}, nil)

	var saved []*library.Author
	authors.On("Save", ctx, mock.AnythingOfType("*library.Author")).Run(func(args mock.Arguments) {
		saved = append(saved, args.Get(1).(*library.Author))
	}).Return(nil)

	report, err := service.RebuildBookRefs(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, report.AuthorsUpdated)
	require.Len(t, saved, 2)
	assert.ElementsMatch(t, []primitive.ObjectID{dune.ID, messiah.ID}, saved[0].Books)
	assert.Empty(t, saved[1].Books)
	assert.NotContains(t, saved[0].Books, stale)
}

func TestAuthorService_RebuildBookRefs_Idempotent(t *testing.T) {
	books := new(MockBookRepository)
	authors := new(MockAuthorRepository)
	service := NewAuthorService(authors, books, nil)
	ctx := context.Background()

	herbert, _ := library.NewAuthor("Frank Herbert")
	dune, _ := library.NewBook("Dune", "")
	dune.LinkAuthor(herbert.ID)

	books.On("FindLinked", ctx).Return([]library.Book{*dune}, nil)
	authors.On("FindAll", ctx, shared.Filter{}).Return([]library.Author{*herbert}, nil)

	var saved []*library.Author
	authors.On("Save", ctx, mock.AnythingOfType("*library.Author")).Run(func(args mock.Arguments) {
		saved = append(saved, args.Get(1).(*library.Author))
	}).Return(nil)

	first, err := service.RebuildBookRefs(ctx)
	require.NoError(t, err)
	second, err := service.RebuildBookRefs(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.AuthorsUpdated, second.AuthorsUpdated)
	require.Len(t, saved, 2)
	assert.Equal(t, saved[0].Books, saved[1].Books)
	assert.Equal(t, []primitive.ObjectID{dune.ID}, saved[1].Books)
}

func TestAuthorService_DuplicateAuthors_ReportsGroups(t *testing.T) {
	books := new(MockBookRepository)
	authors := new(MockAuthorRepository)
	service := NewAuthorService(authors, books, nil)
	ctx := context.Background()

	groups := []library.DuplicateAuthorGroup{
		{Name: "Frank Herbert", Count: 2, IDs: []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}},
	}
	authors.On("FindDuplicateNames", ctx).Return(groups, nil)

	result, err := service.DuplicateAuthors(ctx)

	require.NoError(t, err)
	assert.Equal(t, groups, result)
	// Report only: nothing is merged or saved.
	authors.AssertNotCalled(t, "Save")
}
