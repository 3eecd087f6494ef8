package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Mayuresh351/bookReviewSystem/internal/auth"
	"github.com/Mayuresh351/bookReviewSystem/internal/logx"
	"github.com/Mayuresh351/bookReviewSystem/internal/services/reviews"
)

func (api *API) AddReview(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	bookId := r.PathValue("id")
	if bookId == "" {
		respondWithError(w, http.StatusBadRequest, "Book id is required")
		return
	}

	var req reviews.NewReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if strings.TrimSpace(req.Review) == "" || req.Rating == 0 {
		respondWithError(w, http.StatusBadRequest, "Fields review and rating are required")
		return
	}

	review, err := reviews.AddReview(api.Db, r.Context(), bookId, currentUser.Id, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(reviews.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while adding review")
		return
	}

	respondWithJSON(w, http.StatusCreated, review)
}

func (api *API) UpdateReview(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	bookId := r.PathValue("id")
	if bookId == "" {
		respondWithError(w, http.StatusBadRequest, "Book id is required")
		return
	}

	var req reviews.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if strings.TrimSpace(req.Review) == "" || req.Rating == 0 {
		respondWithError(w, http.StatusBadRequest, "Fields review and rating are required")
		return
	}

	review, err := reviews.UpdateReview(api.Db, r.Context(), bookId, currentUser.Id, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(reviews.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update review")
		return
	}

	respondWithJSON(w, http.StatusOK, review)
}

func (api *API) DeleteReview(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentUser := auth.GetUserFromContext(r.Context())

	bookId := r.PathValue("id")
	if bookId == "" {
		respondWithError(w, http.StatusBadRequest, "Book id is required")
		return
	}

	err := reviews.DeleteReview(api.Db, r.Context(), bookId, currentUser.Id)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(reviews.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while deleting review")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Review for book %s deleted successfully", bookId)})
}
