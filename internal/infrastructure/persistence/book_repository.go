package persistence

import (
	"context"

	"github.com/bookshelf/backend/internal/domain/library"
	"github.com/bookshelf/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure MongoBookRepository implements library.BookRepository
var _ library.BookRepository = (*MongoBookRepository)(nil)

// MongoBookRepository implements BookRepository on the books collection
type MongoBookRepository struct {
	collection *mongo.Collection
}

// NewMongoBookRepository creates a new MongoBookRepository
func NewMongoBookRepository(db *Database) *MongoBookRepository {
	return &MongoBookRepository{collection: db.Collection(CollectionBooks)}
}

// FindByID finds a book by its ID
func (r *MongoBookRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*library.Book, error) {
	var book library.Book
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if err != nil {
		return nil, mapError(err)
	}
	return &book, nil
}

// FindAll finds all books matching the filter
func (r *MongoBookRepository) FindAll(ctx context.Context, filter shared.Filter) ([]library.Book, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["title"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	return r.findMany(ctx, query, findOptions(filter))
}

// FindUnlinked finds books still carrying a free-text author name
func (r *MongoBookRepository) FindUnlinked(ctx context.Context) ([]library.Book, error) {
	query := bson.M{
		"author":     nil,
		"authorName": bson.M{"$nin": bson.A{nil, ""}},
	}
	return r.findMany(ctx, query, nil)
}

// FindLinked finds books whose author field references an Author document
func (r *MongoBookRepository) FindLinked(ctx context.Context) ([]library.Book, error) {
	query := bson.M{"author": bson.M{"$ne": nil}}
	return r.findMany(ctx, query, nil)
}

// FindByTitleAndAuthorName finds a book by exact title and free-text author
func (r *MongoBookRepository) FindByTitleAndAuthorName(ctx context.Context, title, authorName string) (*library.Book, error) {
	var book library.Book
	err := r.collection.FindOne(ctx, bson.M{"title": title, "authorName": authorName}).Decode(&book)
	if err != nil {
		return nil, mapError(err)
	}
	return &book, nil
}

// Count counts all books
func (r *MongoBookRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Save creates or updates a book
func (r *MongoBookRepository) Save(ctx context.Context, book *library.Book) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": book.ID}, book, opts)
	return err
}

// UpdateStatusAll sets the status on every book regardless of current state
func (r *MongoBookRepository) UpdateStatusAll(ctx context.Context, status library.BookStatus) (int64, error) {
	result, err := r.collection.UpdateMany(ctx,
		bson.M{},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// Delete deletes a single book
func (r *MongoBookRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteAll deletes every book
func (r *MongoBookRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *MongoBookRepository) findMany(ctx context.Context, query bson.M, opts *options.FindOptions) ([]library.Book, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection.Find(ctx, query, opts)
	} else {
		cursor, err = r.collection.Find(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	books := []library.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}
