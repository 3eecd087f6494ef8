package reviews

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Mayuresh351/bookReviewSystem/internal/mongodb"
)

// maxPersistAttempts bounds the redo loop when concurrent writers keep
// bumping the book version between our load and our persist.
const maxPersistAttempts = 5

const (
	minRating = 1
	maxRating = 5
)

// AddReview appends the user's review to the book and grows both totals.
// Each user gets at most one review per book; a second create is rejected
// and the caller is pointed at the edit endpoint.
func AddReview(store BookStore, ctx context.Context, bookId, userId string, req NewReviewRequest) (Review, error) {
	if err := validateRating(req.Rating); err != nil {
		return Review{}, err
	}

	newReview := mongodb.ReviewDb{
		UserId: userId,
		Review: req.Review,
		Rating: req.Rating,
	}

	err := mutateBook(store, ctx, bookId, func(set *reviewSet, book *mongodb.BookDb) error {
		if !set.add(newReview) {
			return ErrReviewAlreadyExists
		}
		book.TotalRating += newReview.Rating
		book.TotalReviews += 1
		return nil
	})
	if err != nil {
		return Review{}, err
	}

	return MapDbReviewToApiReview(newReview), nil
}

// UpdateReview replaces the body and rating of the user's existing review.
// The total shifts by the rating delta and the review count stays put.
func UpdateReview(store BookStore, ctx context.Context, bookId, userId string, req UpdateReviewRequest) (Review, error) {
	if err := validateRating(req.Rating); err != nil {
		return Review{}, err
	}

	updated := mongodb.ReviewDb{
		UserId: userId,
		Review: req.Review,
		Rating: req.Rating,
	}

	err := mutateBook(store, ctx, bookId, func(set *reviewSet, book *mongodb.BookDb) error {
		old, ok := set.get(userId)
		if !ok {
			return ErrReviewNotFound
		}
		set.replace(updated)
		book.TotalRating += req.Rating - old.Rating
		return nil
	})
	if err != nil {
		return Review{}, err
	}

	return MapDbReviewToApiReview(updated), nil
}

// DeleteReview removes the user's review and shrinks both totals. The review
// count is clamped at zero so an already-corrupted count can never go negative.
func DeleteReview(store BookStore, ctx context.Context, bookId, userId string) error {
	return mutateBook(store, ctx, bookId, func(set *reviewSet, book *mongodb.BookDb) error {
		removed, ok := set.remove(userId)
		if !ok {
			return ErrReviewNotFound
		}
		book.TotalRating -= removed.Rating
		book.TotalReviews = max(book.TotalReviews-1, 0)
		return nil
	})
}

// GetBookAggregate returns the book's derived average together with its review
// collection. Reads take no part in the version protocol; the stored triple is
// always internally consistent because mutators write it as a unit.
func GetBookAggregate(store BookStore, ctx context.Context, bookId string) (BookAggregate, error) {
	book, err := store.GetBookById(ctx, bookId)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return BookAggregate{}, ErrBookNotFound
		}
		return BookAggregate{}, err
	}

	return BookAggregate{
		Title:         book.Title,
		Author:        book.Author,
		AverageRating: formatAverageRating(book.TotalRating, book.TotalReviews),
		Reviews:       mapDbReviewsToApiReviews(book.Reviews),
	}, nil
}

// mutateBook runs the load -> compute -> persist sequence for one book. The
// mutation callback works on the in-memory review set and adjusts the totals;
// the resulting triple is persisted in a single versioned write. A version
// conflict redoes the whole sequence from a fresh load, so the net effect of
// concurrent mutations on one book is some serial order of them.
func mutateBook(store BookStore, ctx context.Context, bookId string, mutate func(*reviewSet, *mongodb.BookDb) error) error {
	var lastErr error

	for attempt := 0; attempt < maxPersistAttempts; attempt++ {
		book, err := store.GetBookById(ctx, bookId)
		if err != nil {
			if errors.Is(err, mongodb.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}

		set := newReviewSet(book.Reviews)
		if err := mutate(set, &book); err != nil {
			return err
		}

		err = store.PersistBookAggregate(ctx, bookId, book.Version, set.serialize(), book.TotalRating, book.TotalReviews)
		if err == nil {
			return nil
		}
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		if !errors.Is(err, mongodb.ErrVersionConflict) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("persisting reviews for book %s: %w", bookId, lastErr)
}

func validateRating(rating int) error {
	if rating < minRating || rating > maxRating {
		return ErrInvalidRating
	}
	return nil
}

func formatAverageRating(totalRating, totalReviews int) string {
	if totalReviews <= 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(totalRating)/float64(totalReviews), 'f', 2, 64)
}
