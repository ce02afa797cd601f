package social

import (
	"github.com/bookshelf/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FriendRequestStatus represents the state of a friend request
type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestRejected FriendRequestStatus = "rejected"
)

// FriendRequest is the per-(requester, recipient) state machine. At most one
// meaningful pending request exists per ordered pair; accepted and rejected
// are terminal for the instance, a fresh request may follow a rejection.
type FriendRequest struct {
	shared.BaseDocument `bson:",inline"`
	Requester           primitive.ObjectID  `bson:"requester" json:"requester"`
	Recipient           primitive.ObjectID  `bson:"recipient" json:"recipient"`
	Status              FriendRequestStatus `bson:"status" json:"status"`
}

// NewFriendRequest creates a pending request for the ordered pair
func NewFriendRequest(requester, recipient primitive.ObjectID) (*FriendRequest, error) {
	if requester == recipient {
		return nil, shared.NewDomainError("SELF_REQUEST", "Cannot send a friend request to yourself")
	}

	return &FriendRequest{
		BaseDocument: shared.NewBaseDocument(),
		Requester:    requester,
		Recipient:    recipient,
		Status:       FriendRequestPending,
	}, nil
}

// Accept transitions pending -> accepted
func (r *FriendRequest) Accept() error {
	if r.Status != FriendRequestPending {
		return shared.NewDomainError("INVALID_STATE", "Friend request is not pending")
	}
	r.Status = FriendRequestAccepted
	r.Touch()
	return nil
}

// Reject transitions pending -> rejected
func (r *FriendRequest) Reject() error {
	if r.Status != FriendRequestPending {
		return shared.NewDomainError("INVALID_STATE", "Friend request is not pending")
	}
	r.Status = FriendRequestRejected
	r.Touch()
	return nil
}

// IsPending returns true while the request awaits a response
func (r *FriendRequest) IsPending() bool {
	return r.Status == FriendRequestPending
}
