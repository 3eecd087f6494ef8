package server

import (
	"log"
	"net/http"
	"os"

	"github.com/Mayuresh351/bookReviewSystem/internal/api"
	"github.com/Mayuresh351/bookReviewSystem/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewServer wires the routes and middleware around a connected Mongo client.
// Tests run the returned handler directly through httptest.
func NewServer(client *mongo.Client) http.Handler {
	db := mongodb.NewDB(client)
	secret := os.Getenv("JWT_SECRET")
	apiHandlers := api.NewAPI(db, &secret)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /signup", apiHandlers.SignupHandler)
	mux.HandleFunc("POST /login", apiHandlers.LoginHandler)

	mux.HandleFunc("GET /books", apiHandlers.GetBooks)
	mux.HandleFunc("GET /books/search", apiHandlers.SearchBooks)
	mux.HandleFunc("GET /books/{id}", apiHandlers.GetBookById)
	mux.HandleFunc("POST /books", apiHandlers.AddBook)

	mux.HandleFunc("POST /books/{id}/reviews", apiHandlers.AddReview)
	mux.HandleFunc("PUT /books/{id}/reviews", apiHandlers.UpdateReview)
	mux.HandleFunc("DELETE /books/{id}/reviews", apiHandlers.DeleteReview)

	mux.HandleFunc("GET /users", apiHandlers.GetUsers)

	var handler http.Handler = mux
	handler = AuthMiddleware(secret, db)(handler)
	handler = RequestIdMiddleware(handler)

	return handler
}

func ListenAndServe(client *mongo.Client) error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: NewServer(client),
	}

	log.Printf("Server is running on port %s", port)
	return server.ListenAndServe()
}
