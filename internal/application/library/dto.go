package library

import (
	"time"

	"github.com/bookshelf/backend/internal/domain/library"
)

// CreateBookRequest carries a new book submission. The PDF and cover image
// payloads arrive either as multipart files or base64 fields; the handler
// decodes both forms into raw bytes before calling the service.
type CreateBookRequest struct {
	Title       string
	AuthorName  string
	CreatedBy   string
	Description string
	Language    string
	Tags        []string
	CategoryID  string
	PDF         []byte
	CoverImage  []byte
}

// UpdateBookRequest carries a partial edit. Nil pointers leave the stored
// field untouched.
type UpdateBookRequest struct {
	Title         *string
	Description   *string
	Language      *string
	Tags          *[]string
	Rating        *float64
	Review        *string
	PublishedDate *time.Time
	Status        *string
}

// BookListItem is one entry of a book listing. AuthorName is the resolved
// display name of the referenced author; IsFavorite is populated only on the
// per-user listing.
type BookListItem struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	AuthorName    string    `json:"author"`
	CreatedBy     string    `json:"createdBy"`
	Description   string    `json:"description"`
	PDFURL        string    `json:"pdfUrl"`
	CoverImageURL string    `json:"coverImageUrl"`
	PublishedDate time.Time `json:"publishedDate"`
	Language      string    `json:"language"`
	Tags          []string  `json:"tags"`
	Rating        float64   `json:"rating,omitempty"`
	Review        string    `json:"review,omitempty"`
	Status        string    `json:"status"`
	IsFavorite    bool      `json:"isFavorite"`
}

// LinkReport summarizes an author-linking sweep
type LinkReport struct {
	BooksScanned   int `json:"booksScanned"`
	BooksLinked    int `json:"booksLinked"`
	AuthorsCreated int `json:"authorsCreated"`
	Failures       int `json:"failures"`
}

// RebuildReport summarizes a back-reference rebuild sweep
type RebuildReport struct {
	AuthorsUpdated int `json:"authorsUpdated"`
	Failures       int `json:"failures"`
}

// ImportReport summarizes a bulk import run
type ImportReport struct {
	FilesSeen int `json:"filesSeen"`
	Uploaded  int `json:"uploaded"`
	Skipped   int `json:"skipped"`
	Failures  int `json:"failures"`
}

func toBookListItem(book *library.Book, authorName string) BookListItem {
	name := authorName
	if name == "" {
		name = book.AuthorName
	}
	return BookListItem{
		ID:            book.ID.Hex(),
		Title:         book.Title,
		AuthorName:    name,
		CreatedBy:     book.CreatedBy,
		Description:   book.Description,
		PDFURL:        book.PDFURL,
		CoverImageURL: book.CoverImageURL,
		PublishedDate: book.PublishedDate,
		Language:      book.Language,
		Tags:          book.Tags,
		Rating:        book.Rating,
		Review:        book.Review,
		Status:        string(book.Status),
	}
}
