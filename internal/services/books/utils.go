package books

import (
	"errors"
	"net/http"
)

var (
	ErrBookAlreadyExists = errors.New("the book already exists")
	ErrBookNotFound      = errors.New("book not found")
)

var ErrorMap = map[error]int{
	ErrBookAlreadyExists: http.StatusConflict,
	ErrBookNotFound:      http.StatusNotFound,
}
