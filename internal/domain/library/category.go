package library

import (
	"strings"

	"github.com/bookshelf/backend/internal/domain/shared"
)

// Category is a flat reference table entry for grouping books
type Category struct {
	shared.BaseDocument `bson:",inline"`
	Name                string `bson:"name" json:"name"`
	Description         string `bson:"description,omitempty" json:"description,omitempty"`
}

// NewCategory creates a category
func NewCategory(name, description string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name is required")
	}

	return &Category{
		BaseDocument: shared.NewBaseDocument(),
		Name:         name,
		Description:  description,
	}, nil
}
