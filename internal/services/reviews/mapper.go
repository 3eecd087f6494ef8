package reviews

import "github.com/Mayuresh351/bookReviewSystem/internal/mongodb"

func MapDbReviewToApiReview(reviewDb mongodb.ReviewDb) Review {
	return Review{
		UserId: reviewDb.UserId,
		Review: reviewDb.Review,
		Rating: reviewDb.Rating,
	}
}

func mapDbReviewsToApiReviews(reviewsDb []mongodb.ReviewDb) []Review {
	apiReviews := make([]Review, len(reviewsDb))
	for i, reviewDb := range reviewsDb {
		apiReviews[i] = MapDbReviewToApiReview(reviewDb)
	}
	return apiReviews
}
