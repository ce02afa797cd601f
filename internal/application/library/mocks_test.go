package library

import (
	"context"

	"github.com/bookshelf/backend/internal/domain/identity"
	"github.com/bookshelf/backend/internal/domain/library"
	"github.com/bookshelf/backend/internal/domain/shared"
	"github.com/bookshelf/backend/internal/domain/social"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockBookRepository is a mock implementation of BookRepository
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*library.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*library.Book), args.Error(1)
}

func (m *MockBookRepository) FindAll(ctx context.Context, filter shared.Filter) ([]library.Book, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]library.Book), args.Error(1)
}

func (m *MockBookRepository) FindUnlinked(ctx context.Context) ([]library.Book, error) {
	args := m.Called(ctx)
	return args.Get(0).([]library.Book), args.Error(1)
}

func (m *MockBookRepository) FindLinked(ctx context.Context) ([]library.Book, error) {
	args := m.Called(ctx)
	return args.Get(0).([]library.Book), args.Error(1)
}

func (m *MockBookRepository) FindByTitleAndAuthorName(ctx context.Context, title, authorName string) (*library.Book, error) {
	args := m.Called(ctx, title, authorName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*library.Book), args.Error(1)
}

func (m *MockBookRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookRepository) Save(ctx context.Context, book *library.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) UpdateStatusAll(ctx context.Context, status library.BookStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuthorRepository is a mock implementation of AuthorRepository
type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*library.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*library.Author), args.Error(1)
}

func (m *MockAuthorRepository) FindByName(ctx context.Context, name string) (*library.Author, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*library.Author), args.Error(1)
}

func (m *MockAuthorRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]library.Author, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]library.Author), args.Error(1)
}

func (m *MockAuthorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]library.Author, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]library.Author), args.Error(1)
}

func (m *MockAuthorRepository) FindDuplicateNames(ctx context.Context) ([]library.DuplicateAuthorGroup, error) {
	args := m.Called(ctx)
	return args.Get(0).([]library.DuplicateAuthorGroup), args.Error(1)
}

func (m *MockAuthorRepository) Save(ctx context.Context, author *library.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*library.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*library.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*library.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*library.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]library.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]library.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *library.Category) error {
	args := m.Called(ctx, category)
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

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
