package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Mayuresh351/bookReviewSystem/internal/services/reviews"
	"github.com/stretchr/testify/require"
)

func addReview(t *testing.T, bookId string, review reviews.NewReviewRequest, innerToken string) *http.Response {
	t.Helper()
	return doAuthorizedRequest(t, http.MethodPost, "/books/"+bookId+"/reviews", review, innerToken)
}

func updateReview(t *testing.T, bookId string, review reviews.UpdateReviewRequest, innerToken string) *http.Response {
	t.Helper()
	return doAuthorizedRequest(t, http.MethodPut, "/books/"+bookId+"/reviews", review, innerToken)
}

func deleteReview(t *testing.T, bookId string, innerToken string) *http.Response {
	t.Helper()
	return doAuthorizedRequest(t, http.MethodDelete, "/books/"+bookId+"/reviews", nil, innerToken)
}

func getBookAggregate(t *testing.T, bookId string) reviews.BookAggregate {
	t.Helper()

	resp, err := http.Get(testServer.URL + "/books/" + bookId)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var aggregate reviews.BookAggregate
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&aggregate))
	return aggregate
}
