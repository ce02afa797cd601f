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

var _ library.CategoryRepository = (*MongoCategoryRepository)(nil)

// MongoCategoryRepository implements CategoryRepository on the categories
// collection
type MongoCategoryRepository struct {
	collection *mongo.Collection
}

// NewMongoCategoryRepository creates a new MongoCategoryRepository
func NewMongoCategoryRepository(db *Database) *MongoCategoryRepository {
	return &MongoCategoryRepository{collection: db.Collection(CollectionCategories)}
}

// FindByID finds a category by its ID
func (r *MongoCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*library.Category, error) {
	var category library.Category
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		return nil, mapError(err)
	}
	return &category, nil
}

// FindByName finds a category by exact name
func (r *MongoCategoryRepository) FindByName(ctx context.Context, name string) (*library.Category, error) {
	var category library.Category
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&category)
	if err != nil {
		return nil, mapError(err)
	}
	return &category, nil
}

// FindAll finds all categories matching the filter
func (r *MongoCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]library.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []library.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Save creates or updates a category
func (r *MongoCategoryRepository) Save(ctx context.Context, category *library.Category) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": category.ID}, category, opts)
	return err
}
