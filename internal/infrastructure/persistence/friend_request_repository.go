package persistence

import (
	"context"

	"github.com/bookshelf/backend/internal/domain/social"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ social.FriendRequestRepository = (*MongoFriendRequestRepository)(nil)

// MongoFriendRequestRepository implements FriendRequestRepository on the
// friendRequests collection
type MongoFriendRequestRepository struct {
	collection *mongo.Collection
}

// NewMongoFriendRequestRepository creates a new MongoFriendRequestRepository
func NewMongoFriendRequestRepository(db *Database) *MongoFriendRequestRepository {
	return &MongoFriendRequestRepository{collection: db.Collection(CollectionFriendRequests)}
}

// FindByID finds a request by its ID
func (r *MongoFriendRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*social.FriendRequest, error) {
	var request social.FriendRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		return nil, mapError(err)
	}
	return &request, nil
}

// FindPending finds the pending request for the ordered pair
func (r *MongoFriendRequestRepository) FindPending(ctx context.Context, requester, recipient primitive.ObjectID) (*social.FriendRequest, error) {
	var request social.FriendRequest
	query := bson.M{
		"requester": requester,
		"recipient": recipient,
		"status":    social.FriendRequestPending,
	}
	err := r.collection.FindOne(ctx, query).Decode(&request)
	if err != nil {
		return nil, mapError(err)
	}
	return &request, nil
}

// FindLatest finds the most recent request for the ordered pair
func (r *MongoFriendRequestRepository) FindLatest(ctx context.Context, requester, recipient primitive.ObjectID) (*social.FriendRequest, error) {
	var request social.FriendRequest
	query := bson.M{"requester": requester, "recipient": recipient}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	err := r.collection.FindOne(ctx, query, opts).Decode(&request)
	if err != nil {
		return nil, mapError(err)
	}
	return &request, nil
}

// FindPendingForRecipient finds all pending requests addressed to a user
func (r *MongoFriendRequestRepository) FindPendingForRecipient(ctx context.Context, recipient primitive.ObjectID) ([]social.FriendRequest, error) {
	query := bson.M{"recipient": recipient, "status": social.FriendRequestPending}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []social.FriendRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// Save creates or updates a request
func (r *MongoFriendRequestRepository) Save(ctx context.Context, request *social.FriendRequest) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": request.ID}, request, opts)
	return err
}
