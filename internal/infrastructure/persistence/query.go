package persistence

import (
	"github.com/bookshelf/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findOptions translates a domain filter into driver find options
func findOptions(filter shared.Filter) *options.FindOptions {
	opts := options.Find()

	if filter.PageSize > 0 {
		opts.SetSkip(filter.Offset())
		opts.SetLimit(filter.Limit())
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "createdAt"
	}
	dir := -1
	if filter.OrderDir == "asc" {
		dir = 1
	}
	opts.SetSort(bson.D{{Key: orderBy, Value: dir}})

	return opts
}
