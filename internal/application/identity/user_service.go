package identity

import (
	"context"
	"errors"

	"github.com/bookshelf/backend/internal/domain/identity"
	"github.com/bookshelf/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterUserRequest carries a registration attempt from the front end
type RegisterUserRequest struct {
	Username       string
	Email          string
	ProfilePicture string
}

// RegisterResult pairs the user with whether the call created it; the
// handler maps created to 201 and an existing user to 200.
type RegisterResult struct {
	User    *identity.User
	Created bool
}

// UserService handles registration, profile updates and the favorites toggle
type UserService struct {
	users identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(users identity.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register upserts by email: an existing user is returned untouched,
// otherwise a new one is created.
func (s *UserService) Register(ctx context.Context, req RegisterUserRequest) (*RegisterResult, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return &RegisterResult{User: existing}, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := identity.NewUser(req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	user.Profile.ProfilePicture = req.ProfilePicture

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return &RegisterResult{User: user, Created: true}, nil
}

// GetByEmail returns a user by email
func (s *UserService) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// List returns all users
func (s *UserService) List(ctx context.Context) ([]identity.User, error) {
	return s.users.FindAll(ctx, shared.Filter{})
}

// UpdateProfile merges the profile onto the user keyed by email and
// recomputes the derived registrationCompleted flag
func (s *UserService) UpdateProfile(ctx context.Context, email string, profile identity.Profile, isPrivate *bool) (*identity.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	user.ApplyProfile(profile)
	if isPrivate != nil {
		user.IsPrivate = *isPrivate
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleFavorite flips the book's membership in the user's favorites set and
// persists the user. Returns the user and whether the book is now a favorite.
func (s *UserService) ToggleFavorite(ctx context.Context, email string, bookID primitive.ObjectID) (*identity.User, bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}

	added := user.ToggleFavorite(bookID)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, false, err
	}
	return user, added, nil
}
