package reviews

import (
	"errors"
	"net/http"
)

var (
	ErrReviewAlreadyExists = errors.New("review already exists, use the edit endpoint instead")
	ErrReviewNotFound      = errors.New("review not found")
	ErrInvalidRating       = errors.New("rating must be an integer between 1 and 5")
	ErrBookNotFound        = errors.New("book not found")
)

var ErrorMap = map[error]int{
	ErrReviewAlreadyExists: http.StatusConflict,
	ErrReviewNotFound:      http.StatusNotFound,
	ErrInvalidRating:       http.StatusBadRequest,
	ErrBookNotFound:        http.StatusNotFound,
}
