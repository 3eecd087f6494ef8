package reviews

type Review struct {
	UserId string `json:"user_id"`
	Review string `json:"review"`
	Rating int    `json:"rating"`
}

type NewReviewRequest struct {
	Review string `json:"review"`
	Rating int    `json:"rating"`
}

type UpdateReviewRequest struct {
	Review string `json:"review"`
	Rating int    `json:"rating"`
}

// BookAggregate is the read view of a book: its derived average and the full
// review collection, in insertion order.
type BookAggregate struct {
	Title         string   `json:"book_name"`
	Author        string   `json:"author_name"`
	AverageRating string   `json:"average_rating"`
	Reviews       []Review `json:"reviews"`
}
