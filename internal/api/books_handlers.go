package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Mayuresh351/bookReviewSystem/internal/logx"
	"github.com/Mayuresh351/bookReviewSystem/internal/services/books"
	"github.com/Mayuresh351/bookReviewSystem/internal/services/reviews"
)

func (api *API) AddBook(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	var req books.NewBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Author) == "" {
		respondWithError(w, http.StatusBadRequest, "Fields book_name and author_name are required")
		return
	}

	book, err := books.AddBook(api.Db, r.Context(), req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(books.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while adding book")
		return
	}

	respondWithJSON(w, http.StatusCreated, book)
}

func (api *API) GetBooks(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	startId := r.URL.Query().Get("start_id")
	endId := r.URL.Query().Get("end_id")

	allBooks, err := books.GetBooksInRange(api.Db, r.Context(), startId, endId)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, books.AllBooksResponse{Books: allBooks})
}

func (api *API) SearchBooks(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	query := r.URL.Query().Get("query")
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "Missing search query")
		return
	}

	results, err := books.SearchBooks(api.Db, r.Context(), query)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, books.AllBooksResponse{Books: results})
}

// GetBookById renders the aggregate view: book info, two-decimal average
// rating and the full review list.
func (api *API) GetBookById(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	bookId := r.PathValue("id")
	if bookId == "" {
		respondWithError(w, http.StatusBadRequest, "Book id is required")
		return
	}

	aggregate, err := reviews.GetBookAggregate(api.Db, r.Context(), bookId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(reviews.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database lookup failed")
		return
	}

	respondWithJSON(w, http.StatusOK, aggregate)
}
