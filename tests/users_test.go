package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Mayuresh351/bookReviewSystem/internal/api"
	"github.com/Mayuresh351/bookReviewSystem/internal/auth"
	"github.com/Mayuresh351/bookReviewSystem/internal/services/users"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	t.Run("Adding a user successfully", func(t *testing.T) {
		resetDB(t)

		newUser := users.NewUserRequest{
			Username: "testuser",
			Name:     "testname",
			Password: "testpass",
		}
		postBody, err := json.Marshal(newUser)
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
		require.NotEmpty(t, respBody.Id, "id should not be empty")
		require.Equal(t, newUser.Username, respBody.Username)
		require.Equal(t, newUser.Name, respBody.Name)
		require.NotEmpty(t, respBody.CreatedAt, "createdAt should not be empty")
		require.NotEmpty(t, respBody.UpdatedAt, "updatedAt should not be empty")

		// Database assertion: password stored hashed, no session token yet
		userDb := getUserFromDb(t, respBody.Id)
		require.NotEqual(t, newUser.Password, userDb.PasswordHash)
		require.Empty(t, userDb.Token, "no session token before the first login")
	})

	t.Run("Adding a user with validation cases", func(t *testing.T) {
		resetDB(t)

		firstUser := users.NewUserRequest{
			Username: "testuser",
			Name:     "testname",
			Password: "testpass",
		}
		addUser(t, firstUser)

		cases := []struct {
			user               users.NewUserRequest
			apiError           error
			statusCodeExpected int
			testErrorMessage   string
		}{
			{
				user: users.NewUserRequest{
					Username: firstUser.Username,
					Name:     "othername",
					Password: "testpass",
				},
				apiError:           users.ErrUsernameTaken,
				statusCodeExpected: http.StatusConflict,
				testErrorMessage:   "Failed validating duplicated username",
			},
			{
				user: users.NewUserRequest{
					Username: "u",
					Name:     "othername",
					Password: "testpass",
				},
				apiError:           users.ErrInvalidUsernameSize,
				statusCodeExpected: http.StatusBadRequest,
				testErrorMessage:   "Failed validating username size",
			},
			{
				user: users.NewUserRequest{
					Username: "not a username!",
					Name:     "othername",
					Password: "testpass",
				},
				apiError:           users.ErrInvalidUsername,
				statusCodeExpected: http.StatusBadRequest,
				testErrorMessage:   "Failed validating username charset",
			},
		}

		for _, tc := range cases {
			postBody, err := json.Marshal(tc.user)
			require.NoError(t, err)

			resp, err := http.Post(
				testServer.URL+"/signup",
				"application/json",
				bytes.NewBuffer(postBody),
			)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tc.statusCodeExpected, resp.StatusCode, tc.testErrorMessage)

			var respBody api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
			require.Contains(t, respBody.ErrorMessage, tc.apiError.Error()[1:], tc.testErrorMessage)
		}
	})

	t.Run("Missing fields should return 400", func(t *testing.T) {
		resetDB(t)

		postBody, err := json.Marshal(users.NewUserRequest{Username: "testuser"})
		require.NoError(t, err)

		resp, err := http.Post(
			testServer.URL+"/signup",
			"application/json",
			bytes.NewBuffer(postBody),
		)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetUsers(t *testing.T) {
	resetDB(t)

	addUser(t, users.NewUserRequest{Username: "first", Name: "First", Password: "testpass"})
	addUser(t, users.NewUserRequest{Username: "second", Name: "Second", Password: "testpass"})

	resp, err := http.Get(testServer.URL + "/users")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var respBody users.AllUsersResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
	require.Len(t, respBody.Users, 2)
}

func TestLogin(t *testing.T) {
	resetDB(t)

	newUser := users.NewUserRequest{
		Username: "testuser",
		Name:     "testname",
		Password: "testpass",
	}
	user, _ := addUser(t, newUser)

	t.Run("Login stores the issued token on the user", func(t *testing.T) {
		token := getUserToken(t, auth.LoginRequest{Username: newUser.Username, Password: newUser.Password})
		require.NotEmpty(t, token)

		userDb := getUserFromDb(t, user.Id)
		require.Equal(t, token, userDb.Token)
	})

	t.Run("Login with wrong password should return 401", func(t *testing.T) {
		postBody, err := json.Marshal(auth.LoginRequest{Username: newUser.Username, Password: "wrongpass"})
		require.NoError(t, err)

		resp, err := http.Post(
			testServer.URL+"/login",
			"application/json",
			bytes.NewBuffer(postBody),
		)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Login with unknown username should return 404", func(t *testing.T) {
		postBody, err := json.Marshal(auth.LoginRequest{Username: "ghost", Password: "testpass"})
		require.NoError(t, err)

		resp, err := http.Post(
			testServer.URL+"/login",
			"application/json",
			bytes.NewBuffer(postBody),
		)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("A new login invalidates the previous session token", func(t *testing.T) {
		resetDB(t)
		_, firstToken := addUser(t, newUser)

		// Seed a book so the mutation below is otherwise valid
		seedBooks(t, loadBooksFixture(t))

		// JWT timestamps have second precision; wait so the second login
		// produces a distinct token
		time.Sleep(1100 * time.Millisecond)

		// Second login rotates the stored token
		secondToken := getUserToken(t, auth.LoginRequest{Username: newUser.Username, Password: newUser.Password})

		newBook := map[string]string{"book_name": "Some Book", "author_name": "Some Author"}
		resp := doAuthorizedRequest(t, http.MethodPost, "/books", newBook, firstToken)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "superseded token must be rejected")

		resp2 := doAuthorizedRequest(t, http.MethodPost, "/books", newBook, secondToken)
		defer resp2.Body.Close()
		require.Equal(t, http.StatusCreated, resp2.StatusCode, "the active token must be accepted")
	})
}
