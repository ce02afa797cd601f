package identity

import (
	"context"
	"testing"
	"time"

	"github.com/bookshelf/backend/internal/domain/identity"
	"github.com/bookshelf/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

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

func TestUserService_Register_NewUser(t *testing.T) {
	users := new(MockUserRepository)
	service := NewUserService(users)
	ctx := context.Background()

	users.On("FindByEmail", ctx, "reader@example.com").Return(nil, shared.ErrNotFound)
	users.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	result, err := service.Register(ctx, RegisterUserRequest{
		Username: "reader",
		Email:    "reader@example.com",
	})

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, "reader@example.com", result.User.Email)
	assert.Empty(t, result.User.FavoriteBooks)
	assert.Empty(t, result.User.Friends)
	users.AssertExpectations(t)
}

func TestUserService_Register_ExistingUserUntouched(t *testing.T) {
	users := new(MockUserRepository)
	service := NewUserService(users)
	ctx := context.Background()

	existing, _ := identity.NewUser("reader", "reader@example.com")
	users.On("FindByEmail", ctx, "reader@example.com").Return(existing, nil)

	result, err := service.Register(ctx, RegisterUserRequest{
		Username: "someone-else",
		Email:    "reader@example.com",
	})

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, "reader", result.User.Username)
	users.AssertNotCalled(t, "Save")
}

func TestUserService_ToggleFavorite_PairRestoresSet(t *testing.T) {
	users := new(MockUserRepository)
	service := NewUserService(users)
	ctx := context.Background()

	user, _ := identity.NewUser("reader", "reader@example.com")
	keeper := primitive.NewObjectID()
	user.ToggleFavorite(keeper)
	original := append([]primitive.ObjectID(nil), user.FavoriteBooks...)

	bookID := primitive.NewObjectID()
	users.On("FindByEmail", ctx, "reader@example.com").Return(user, nil)
	users.On("Save", ctx, user).Return(nil)

	_, added, err := service.ToggleFavorite(ctx, "reader@example.com", bookID)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, user.IsFavorite(bookID))

	_, added, err = service.ToggleFavorite(ctx, "reader@example.com", bookID)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, original, user.FavoriteBooks)
}

func TestUserService_UpdateProfile_RecomputesCompletion(t *testing.T) {
	users := new(MockUserRepository)
	service := NewUserService(users)
	ctx := context.Background()

	user, _ := identity.NewUser("reader", "reader@example.com")
	require.False(t, user.RegistrationCompleted)

	users.On("FindByEmail", ctx, "reader@example.com").Return(user, nil)
	users.On("Save", ctx, user).Return(nil)

	born := time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)
	updated, err := service.UpdateProfile(ctx, "reader@example.com", identity.Profile{
		Name:        "Reader One",
		DateOfBirth: &born,
		Nationality: "NL",
	}, nil)

	require.NoError(t, err)
	assert.True(t, updated.RegistrationCompleted)

	incomplete, err := service.UpdateProfile(ctx, "reader@example.com", identity.Profile{
		Name: "Reader One",
	}, nil)

	require.NoError(t, err)
	assert.False(t, incomplete.RegistrationCompleted)
}

func TestUserService_UpdateProfile_SetsPrivacy(t *testing.T) {
	users := new(MockUserRepository)
	service := NewUserService(users)
	ctx := context.Background()

	user, _ := identity.NewUser("reader", "reader@example.com")
	users.On("FindByEmail", ctx, "reader@example.com").Return(user, nil)
	users.On("Save", ctx, user).Return(nil)

	private := true
	updated, err := service.UpdateProfile(ctx, "reader@example.com", identity.Profile{}, &private)

	require.NoError(t, err)
	assert.True(t, updated.IsPrivate)
}
