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

var _ library.AuthorRepository = (*MongoAuthorRepository)(nil)

// MongoAuthorRepository implements AuthorRepository on the authors collection
type MongoAuthorRepository struct {
	collection *mongo.Collection
}

// NewMongoAuthorRepository creates a new MongoAuthorRepository
func NewMongoAuthorRepository(db *Database) *MongoAuthorRepository {
	return &MongoAuthorRepository{collection: db.Collection(CollectionAuthors)}
}

// FindByID finds an author by its ID
func (r *MongoAuthorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*library.Author, error) {
	var author library.Author
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&author)
	if err != nil {
		return nil, mapError(err)
	}
	return &author, nil
}

// FindByName finds an author by exact name match
func (r *MongoAuthorRepository) FindByName(ctx context.Context, name string) (*library.Author, error) {
	var author library.Author
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&author)
	if err != nil {
		return nil, mapError(err)
	}
	return &author, nil
}

// FindByIDs finds all authors among the given IDs
func (r *MongoAuthorRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]library.Author, error) {
	if len(ids) == 0 {
		return []library.Author{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	authors := []library.Author{}
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

// FindAll finds all authors matching the filter
func (r *MongoAuthorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]library.Author, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["name"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	cursor, err := r.collection.Find(ctx, query, findOptions(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	authors := []library.Author{}
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

// FindDuplicateNames groups authors by exact name and keeps groups with more
// than one record
func (r *MongoAuthorRepository) FindDuplicateNames(ctx context.Context) ([]library.DuplicateAuthorGroup, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$name",
			"count": bson.M{"$sum": 1},
			"ids":   bson.M{"$push": "$_id"},
		}}},
		{{Key: "$match", Value: bson.M{"count": bson.M{"$gt": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	groups := []library.DuplicateAuthorGroup{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Save creates or updates an author
func (r *MongoAuthorRepository) Save(ctx context.Context, author *library.Author) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": author.ID}, author, opts)
	return err
}
