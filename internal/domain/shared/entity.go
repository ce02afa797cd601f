package shared

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() primitive.ObjectID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseDocument provides common fields for all stored documents
type BaseDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GetID returns the document ID
func (d *BaseDocument) GetID() primitive.ObjectID {
	return d.ID
}

// GetCreatedAt returns the creation timestamp
func (d *BaseDocument) GetCreatedAt() time.Time {
	return d.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (d *BaseDocument) GetUpdatedAt() time.Time {
	return d.UpdatedAt
}

// Touch bumps the update timestamp
func (d *BaseDocument) Touch() {
	d.UpdatedAt = time.Now()
}

// NewBaseDocument creates a new base document with a generated ID
func NewBaseDocument() BaseDocument {
	now := time.Now()
	return BaseDocument{
		ID:        primitive.NewObjectID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
