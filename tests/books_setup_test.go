package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Mayuresh351/bookReviewSystem/internal/mongodb"
	"github.com/Mayuresh351/bookReviewSystem/internal/services/books"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// doAuthorizedRequest sends a JSON request with a bearer token. A nil payload
// sends no body.
func doAuthorizedRequest(t *testing.T, method, path string, payload any, innerToken string) *http.Response {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(jsonData)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, testServer.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+innerToken)
	req.Header.Set("Content-Type", "application/json")
	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)

	return resp
}

func addBook(t *testing.T, newBook books.NewBookRequest, innerToken string) books.Book {
	t.Helper()

	resp := doAuthorizedRequest(t, http.MethodPost, "/books", newBook, innerToken)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var respBody books.Book
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
	return respBody
}

func getBookFromDb(t *testing.T, bookId string) mongodb.BookDb {
	t.Helper()

	db := testClient.Database(TEST_DB_NAME)
	coll := db.Collection(mongodb.BooksCollection)

	var book mongodb.BookDb
	err := coll.FindOne(context.Background(), bson.M{"_id": bookId}).Decode(&book)
	require.NoError(t, err, "error querying a book from db")

	return book
}
