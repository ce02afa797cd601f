package social

import (
	"context"
	"errors"

	"github.com/bookshelf/backend/internal/domain/identity"
	"github.com/bookshelf/backend/internal/domain/shared"
	"github.com/bookshelf/backend/internal/domain/social"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// NotificationService reads the notification feed and flips read flags.
// Friend-request entries get their status joined in from the request
// document at read time instead of storing a second copy.
type NotificationService struct {
	notifications social.NotificationRepository
	requests      social.FriendRequestRepository
	users         identity.UserRepository
	logger        *zap.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notifications social.NotificationRepository,
	requests social.FriendRequestRepository,
	users identity.UserRepository,
	logger *zap.Logger,
) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		notifications: notifications,
		requests:      requests,
		users:         users,
		logger:        logger,
	}
}

// ListForUser returns the user's notifications, newest first
func (s *NotificationService) ListForUser(ctx context.Context, email string) ([]NotificationView, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	notifications, err := s.notifications.FindForRecipient(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	views := make([]NotificationView, 0, len(notifications))
	for i := range notifications {
		n := &notifications[i]
		view := toNotificationView(n)

		if n.Requester != nil {
			requester, err := s.users.FindByID(ctx, *n.Requester)
			if err == nil {
				ref := toUserRef(requester)
				view.Requester = &ref
			}
		}
		if n.FriendRequest != nil {
			request, err := s.requests.FindByID(ctx, *n.FriendRequest)
			if err == nil {
				view.Status = string(request.Status)
			} else if !errors.Is(err, shared.ErrNotFound) {
				s.logger.Warn("failed to join friend request status",
					zap.String("notificationId", n.ID.Hex()),
					zap.Error(err))
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// MarkRead flips the read flag on a single notification
func (s *NotificationService) MarkRead(ctx context.Context, id primitive.ObjectID) (*social.Notification, error) {
	notification, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	notification.MarkRead()
	if err := s.notifications.Save(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}
