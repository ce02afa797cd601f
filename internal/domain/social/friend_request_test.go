package social

import (
	"testing"

	"github.com/bookshelf/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewFriendRequest(t *testing.T) {
	requester := primitive.NewObjectID()
	recipient := primitive.NewObjectID()

	request, err := NewFriendRequest(requester, recipient)

	require.NoError(t, err)
	assert.Equal(t, FriendRequestPending, request.Status)
	assert.True(t, request.IsPending())
}

func TestNewFriendRequest_Self(t *testing.T) {
	id := primitive.NewObjectID()

	_, err := NewFriendRequest(id, id)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "SELF_REQUEST", domainErr.Code)
}

func TestFriendRequest_AcceptIsTerminal(t *testing.T) {
	request, _ := NewFriendRequest(primitive.NewObjectID(), primitive.NewObjectID())

	require.NoError(t, request.Accept())
	assert.Equal(t, FriendRequestAccepted, request.Status)

	err := request.Accept()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)

	assert.Error(t, request.Reject())
	assert.Equal(t, FriendRequestAccepted, request.Status)
}

func TestFriendRequest_RejectIsTerminal(t *testing.T) {
	request, _ := NewFriendRequest(primitive.NewObjectID(), primitive.NewObjectID())

	require.NoError(t, request.Reject())
	assert.Equal(t, FriendRequestRejected, request.Status)
	assert.Error(t, request.Accept())
}

func TestNewFriendRequestNotification(t *testing.T) {
	request, _ := NewFriendRequest(primitive.NewObjectID(), primitive.NewObjectID())

	notification := NewFriendRequestNotification(request, "alice sent you a friend request")

	assert.Equal(t, request.Recipient, notification.Recipient)
	assert.Equal(t, request.Requester, *notification.Requester)
	assert.Equal(t, request.ID, *notification.FriendRequest)
	assert.Equal(t, NotificationFriendRequest, notification.Type)
	assert.False(t, notification.Read)
}

func TestNotification_MarkRead(t *testing.T) {
	notification := NewBookNotification(primitive.NewObjectID(), primitive.NewObjectID(), "Dune")

	require.False(t, notification.Read)
	notification.MarkRead()
	assert.True(t, notification.Read)
}
