package persistence

import (
	"context"

	"github.com/bookshelf/backend/internal/domain/identity"
	"github.com/bookshelf/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ identity.UserRepository = (*MongoUserRepository)(nil)

// MongoUserRepository implements UserRepository on the users collection
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection(CollectionUsers)}
}

// FindByID finds a user by its ID
func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*identity.User, error) {
	var user identity.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var user identity.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// FindAll finds all users matching the filter
func (r *MongoUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"username": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}
	cursor, err := r.collection.Find(ctx, query, findOptions(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []identity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Save creates or updates a user
func (r *MongoUserRepository) Save(ctx context.Context, user *identity.User) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user, opts)
	return err
}

// AddFriend inserts friendID into the user's friends set. $addToSet keeps the
// insert idempotent under concurrent accepts.
func (r *MongoUserRepository) AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"friends": friendID}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}
