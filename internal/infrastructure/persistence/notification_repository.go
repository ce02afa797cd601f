package persistence

import (
	"context"

	"github.com/bookshelf/backend/internal/domain/social"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ social.NotificationRepository = (*MongoNotificationRepository)(nil)

// MongoNotificationRepository implements NotificationRepository on the
// notifications collection
type MongoNotificationRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationRepository creates a new MongoNotificationRepository
func NewMongoNotificationRepository(db *Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{collection: db.Collection(CollectionNotifications)}
}

// FindByID finds a notification by its ID
func (r *MongoNotificationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*social.Notification, error) {
	var notification social.Notification
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&notification)
	if err != nil {
		return nil, mapError(err)
	}
	return &notification, nil
}

// FindForRecipient finds all notifications addressed to a user, newest first
func (r *MongoNotificationRepository) FindForRecipient(ctx context.Context, recipient primitive.ObjectID) ([]social.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"recipient": recipient}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []social.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// FindByFriendRequest finds the notification created for a friend request
func (r *MongoNotificationRepository) FindByFriendRequest(ctx context.Context, requestID primitive.ObjectID) (*social.Notification, error) {
	var notification social.Notification
	err := r.collection.FindOne(ctx, bson.M{"friendRequest": requestID}).Decode(&notification)
	if err != nil {
		return nil, mapError(err)
	}
	return &notification, nil
}

// Save creates or updates a notification
func (r *MongoNotificationRepository) Save(ctx context.Context, notification *social.Notification) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": notification.ID}, notification, opts)
	return err
}
