package api

import (
	"net/http"

	"github.com/Mayuresh351/bookReviewSystem/internal/mongodb"
)

type API struct {
	Db     *mongodb.DB
	Secret *string
}

func NewAPI(db *mongodb.DB, secret *string) *API {
	return &API{Db: db, Secret: secret}
}

// IsPublicPath reports whether a request may skip the auth middleware.
// Reads carry no token; only signup and login are public mutations.
func IsPublicPath(r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	if r.Method == http.MethodPost {
		return r.URL.Path == "/signup" || r.URL.Path == "/login"
	}
	return false
}
