package social

import (
	"context"
	"testing"

	"github.com/bookshelf/backend/internal/domain/shared"
	"github.com/bookshelf/backend/internal/domain/social"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newNotificationServiceFixture() (*NotificationService, *MockNotificationRepository, *MockFriendRequestRepository, *MockUserRepository) {
	notifications := new(MockNotificationRepository)
	requests := new(MockFriendRequestRepository)
	users := new(MockUserRepository)
	service := NewNotificationService(notifications, requests, users, nil)
	return service, notifications, requests, users
}

func TestNotificationService_ListForUser_DerivesFriendRequestStatus(t *testing.T) {
	service, notifications, requests, users := newNotificationServiceFixture()
	ctx := context.Background()

	alice := newTestUser(t, "alice", "alice@example.com")
	bob := newTestUser(t, "bob", "bob@example.com")
	request, _ := social.NewFriendRequest(bob.ID, alice.ID)
	notification := social.NewFriendRequestNotification(request, "bob sent you a friend request")

	// The request was accepted after the notification was written; the feed
	// must show the current state, not a stored snapshot.
	require.NoError(t, request.Accept())

	users.On("FindByEmail", ctx, "alice@example.com").Return(alice, nil)
	notifications.On("FindForRecipient", ctx, alice.ID).Return([]social.Notification{*notification}, nil)
	users.On("FindByID", ctx, bob.ID).Return(bob, nil)
	requests.On("FindByID", ctx, request.ID).Return(request, nil)

	views, err := service.ListForUser(ctx, "alice@example.com")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "accepted", views[0].Status)
	require.NotNil(t, views[0].Requester)
	assert.Equal(t, "bob", views[0].Requester.Username)
}

func TestNotificationService_ListForUser_BookNotification(t *testing.T) {
	service, notifications, requests, users := newNotificationServiceFixture()
	ctx := context.Background()

	alice := newTestUser(t, "alice", "alice@example.com")
	bookID := primitive.NewObjectID()
	notification := social.NewBookApprovedNotification(alice.ID, bookID, "Dune")

	users.On("FindByEmail", ctx, "alice@example.com").Return(alice, nil)
	notifications.On("FindForRecipient", ctx, alice.ID).Return([]social.Notification{*notification}, nil)

	views, err := service.ListForUser(ctx, "alice@example.com")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, string(social.NotificationBookApproved), views[0].Type)
	assert.Equal(t, "Dune", views[0].BookTitle)
	assert.True(t, views[0].BookApproved)
	assert.Equal(t, bookID.Hex(), views[0].Book)
	requests.AssertNotCalled(t, "FindByID")
}

func TestNotificationService_ListForUser_MissingRequestLeavesStatusEmpty(t *testing.T) {
	service, notifications, requests, users := newNotificationServiceFixture()
	ctx := context.Background()

	alice := newTestUser(t, "alice", "alice@example.com")
	bob := newTestUser(t, "bob", "bob@example.com")
	request, _ := social.NewFriendRequest(bob.ID, alice.ID)
	notification := social.NewFriendRequestNotification(request, "bob sent you a friend request")

	users.On("FindByEmail", ctx, "alice@example.com").Return(alice, nil)
	notifications.On("FindForRecipient", ctx, alice.ID).Return([]social.Notification{*notification}, nil)
	users.On("FindByID", ctx, bob.ID).Return(bob, nil)
	requests.On("FindByID", ctx, request.ID).Return(nil, shared.ErrNotFound)

	views, err := service.ListForUser(ctx, "alice@example.com")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].Status)
}

func TestNotificationService_MarkRead(t *testing.T) {
	service, notifications, _, _ := newNotificationServiceFixture()
	ctx := context.Background()

	recipient := primitive.NewObjectID()
	notification := social.NewBookNotification(recipient, primitive.NewObjectID(), "Dune")
	require.False(t, notification.Read)

	notifications.On("FindByID", ctx, notification.ID).Return(notification, nil)
	notifications.On("Save", ctx, notification).Return(nil)

	updated, err := service.MarkRead(ctx, notification.ID)

	require.NoError(t, err)
	assert.True(t, updated.Read)
	notifications.AssertExpectations(t)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	service, notifications, _, _ := newNotificationServiceFixture()
	ctx := context.Background()

	id := primitive.NewObjectID()
	notifications.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	_, err := service.MarkRead(ctx, id)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	notifications.AssertNotCalled(t, "Save")
}
