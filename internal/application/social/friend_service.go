package social

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookshelf/backend/internal/domain/identity"
	"github.com/bookshelf/backend/internal/domain/shared"
	"github.com/bookshelf/backend/internal/domain/social"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// FriendService drives the friend-request state machine and keeps the mutual
// friends sets in lockstep on acceptance.
type FriendService struct {
	requests      social.FriendRequestRepository
	notifications social.NotificationRepository
	users         identity.UserRepository
	logger        *zap.Logger
}

// NewFriendService creates a new FriendService
func NewFriendService(
	requests social.FriendRequestRepository,
	notifications social.NotificationRepository,
	users identity.UserRepository,
	logger *zap.Logger,
) *FriendService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FriendService{
		requests:      requests,
		notifications: notifications,
		users:         users,
		logger:        logger,
	}
}

// Send creates a pending request from requester to recipient. It refuses a
// pair that is already mutually friended and a duplicate pending request for
// the same ordered pair. Every send also stores a notification addressed to
// the recipient.
func (s *FriendService) Send(ctx context.Context, requesterEmail, recipientEmail string) (*social.FriendRequest, error) {
	requester, err := s.users.FindByEmail(ctx, requesterEmail)
	if err != nil {
		return nil, err
	}
	recipient, err := s.users.FindByEmail(ctx, recipientEmail)
	if err != nil {
		return nil, err
	}

	if requester.IsFriend(recipient.ID) {
		return nil, shared.ErrAlreadyFriends
	}

	existing, err := s.requests.FindPending(ctx, requester.ID, recipient.ID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A pending friend request already exists")
	}

	request, err := social.NewFriendRequest(requester.ID, recipient.ID)
	if err != nil {
		return nil, err
	}
	if err := s.requests.Save(ctx, request); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("%s sent you a friend request", requester.Username)
	notification := social.NewFriendRequestNotification(request, message)
	if err := s.notifications.Save(ctx, notification); err != nil {
		// The request stands even if the notification write fails.
		s.logger.Warn("failed to store friend request notification",
			zap.String("requestId", request.ID.Hex()),
			zap.Error(err))
	}

	return request, nil
}

// Respond transitions a pending request to accepted or rejected. Accepting
// inserts each user into the other's friends set with set semantics, so a
// replayed accept cannot double-add. The matching notification is marked
// read either way.
func (s *FriendService) Respond(ctx context.Context, requestID primitive.ObjectID, accept bool) (*social.FriendRequest, error) {
	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if accept {
		err = request.Accept()
	} else {
		err = request.Reject()
	}
	if err != nil {
		return nil, err
	}

	if err := s.requests.Save(ctx, request); err != nil {
		return nil, err
	}

	if accept {
		if err := s.users.AddFriend(ctx, request.Requester, request.Recipient); err != nil {
			return nil, err
		}
		if err := s.users.AddFriend(ctx, request.Recipient, request.Requester); err != nil {
			return nil, err
		}
	}

	s.markNotificationRead(ctx, request.ID)

	return request, nil
}

// Status returns the state of the latest request for the ordered pair, or
// "none" when no request was ever sent.
func (s *FriendService) Status(ctx context.Context, requesterEmail, recipientEmail string) (string, error) {
	requester, err := s.users.FindByEmail(ctx, requesterEmail)
	if err != nil {
		return "", err
	}
	recipient, err := s.users.FindByEmail(ctx, recipientEmail)
	if err != nil {
		return "", err
	}

	request, err := s.requests.FindLatest(ctx, requester.ID, recipient.ID)
	if errors.Is(err, shared.ErrNotFound) {
		return "none", nil
	}
	if err != nil {
		return "", err
	}
	return string(request.Status), nil
}

// ListForUser returns the pending requests addressed to the user
func (s *FriendService) ListForUser(ctx context.Context, email string) ([]FriendRequestView, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	requests, err := s.requests.FindPendingForRecipient(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	views := make([]FriendRequestView, 0, len(requests))
	for i := range requests {
		requester, err := s.users.FindByID(ctx, requests[i].Requester)
		if err != nil {
			s.logger.Warn("friend request with unresolvable requester skipped",
				zap.String("requestId", requests[i].ID.Hex()))
			continue
		}
		views = append(views, FriendRequestView{
			ID:        requests[i].ID.Hex(),
			Requester: toUserRef(requester),
			Status:    string(requests[i].Status),
			CreatedAt: requests[i].CreatedAt,
		})
	}
	return views, nil
}

func (s *FriendService) markNotificationRead(ctx context.Context, requestID primitive.ObjectID) {
	notification, err := s.notifications.FindByFriendRequest(ctx, requestID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("failed to look up friend request notification",
				zap.String("requestId", requestID.Hex()),
				zap.Error(err))
		}
		return
	}
	notification.MarkRead()
	if err := s.notifications.Save(ctx, notification); err != nil {
		s.logger.Warn("failed to mark notification read",
			zap.String("notificationId", notification.ID.Hex()),
			zap.Error(err))
	}
}
