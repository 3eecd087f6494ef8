package users

import (
	"errors"
	"net/http"
	"regexp"
)

var (
	ErrUsernameTaken       = errors.New("the username is unavailable, try another one")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidUsername     = errors.New("username may only contain letters, digits, '-' and '_'")
	ErrInvalidUsernameSize = errors.New("username must have between 3 and 30 characters")
)

var ErrorMap = map[error]int{
	ErrUsernameTaken:       http.StatusConflict,
	ErrUserNotFound:        http.StatusNotFound,
	ErrInvalidUsername:     http.StatusBadRequest,
	ErrInvalidUsernameSize: http.StatusBadRequest,
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}
