package main

import (
	"context"
	"log"

	"github.com/Mayuresh351/bookReviewSystem/internal/mongodb"
	"github.com/Mayuresh351/bookReviewSystem/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	ctx := context.Background()
	client, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := server.ListenAndServe(client); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
