package social

import (
	"context"

	"github.com/bookshelf/backend/internal/domain/identity"
	"github.com/bookshelf/backend/internal/domain/shared"
	"github.com/bookshelf/backend/internal/domain/social"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockFriendRequestRepository is a mock implementation of social.FriendRequestRepository
type MockFriendRequestRepository struct {
	mock.Mock
}

func (m *MockFriendRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*social.FriendRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.FriendRequest), args.Error(1)
}

func (m *MockFriendRequestRepository) FindPending(ctx context.Context, requester, recipient primitive.ObjectID) (*social.FriendRequest, error) {
	args := m.Called(ctx, requester, recipient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.FriendRequest), args.Error(1)
}

func (m *MockFriendRequestRepository) FindLatest(ctx context.Context, requester, recipient primitive.ObjectID) (*social.FriendRequest, error) {
	args := m.Called(ctx, requester, recipient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.FriendRequest), args.Error(1)
}

func (m *MockFriendRequestRepository) FindPendingForRecipient(ctx context.Context, recipient primitive.ObjectID) ([]social.FriendRequest, error) {
	args := m.Called(ctx, recipient)
	return args.Get(0).([]social.FriendRequest), args.Error(1)
}

func (m *MockFriendRequestRepository) Save(ctx context.Context, request *social.FriendRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

// MockNotificationRepository is a mock implementation of social.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*social.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindForRecipient(ctx context.Context, recipient primitive.ObjectID) ([]social.Notification, error) {
	args := m.Called(ctx, recipient)
	return args.Get(0).([]social.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByFriendRequest(ctx context.Context, requestID primitive.ObjectID) (*social.Notification, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Save(ctx context.Context, notification *social.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) error {
	args := m.Called(ctx, userID, friendID)
	return args.Error(0)
}
