package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Mayuresh351/bookReviewSystem/internal/auth"
	"github.com/Mayuresh351/bookReviewSystem/internal/mongodb"
	"github.com/Mayuresh351/bookReviewSystem/internal/services/users"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func addUser(t *testing.T, user users.NewUserRequest) (users.UserResponse, string) {
	t.Helper()

	// Add user
	postBody, err := json.Marshal(user)
	require.NoError(t, err)

	resp, err := http.Post(
		testServer.URL+"/signup",
		"application/json",
		bytes.NewBuffer(postBody),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var respBody users.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))

	// Get token
	authUser := auth.LoginRequest{
		Username: user.Username,
		Password: user.Password,
	}
	token := getUserToken(t, authUser)

	return respBody, token
}

func getUserToken(t *testing.T, authUser auth.LoginRequest) string {
	t.Helper()

	postBody, err := json.Marshal(authUser)
	require.NoError(t, err)

	resp, err := http.Post(
		testServer.URL+"/login",
		"application/json",
		bytes.NewBuffer(postBody),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var respBodyAuth auth.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBodyAuth))

	return respBodyAuth.AccessToken
}

func getUserFromDb(t *testing.T, userId string) mongodb.UserDb {
	t.Helper()

	ctx := context.Background()
	db := testClient.Database(TEST_DB_NAME)
	coll := db.Collection(mongodb.UsersCollection)
	var userDb mongodb.UserDb
	err := coll.FindOne(ctx, bson.M{"_id": userId}).Decode(&userDb)
	require.NoError(t, err, "error querying a user from db")
	return userDb
}
