package reviews

import (
	"context"

	"github.com/Mayuresh351/bookReviewSystem/internal/mongodb"
)

// BookStore is the slice of the storage layer the aggregation engine owns.
// PersistBookAggregate must write the whole triple atomically and fail with
// mongodb.ErrVersionConflict when the loaded version is stale.
type BookStore interface {
	GetBookById(ctx context.Context, bookId string) (mongodb.BookDb, error)
	PersistBookAggregate(ctx context.Context, bookId string, version int64, reviews []mongodb.ReviewDb, totalRating, totalReviews int) error
}

var _ BookStore = (*mongodb.DB)(nil)
