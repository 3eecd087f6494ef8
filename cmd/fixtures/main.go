package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Mayuresh351/bookReviewSystem/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Writes the seed books used by the integration tests to tests/fixtures/books.json.
func main() {
	seedBooks := []struct {
		title  string
		author string
	}{
		{"The Name of the Wind", "Patrick Rothfuss"},
		{"A Wise Man's Fear", "Patrick Rothfuss"},
		{"The Left Hand of Darkness", "Ursula K. Le Guin"},
		{"Snow Crash", "Neal Stephenson"},
		{"The Remains of the Day", "Kazuo Ishiguro"},
	}

	now := time.Now().UTC()
	booksToExport := make([]mongodb.BookDb, len(seedBooks))
	for i, seed := range seedBooks {
		booksToExport[i] = mongodb.BookDb{
			Id:        primitive.NewObjectID().Hex(),
			Title:     seed.title,
			Author:    seed.author,
			Reviews:   []mongodb.ReviewDb{},
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	rootDir, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	booksPath := filepath.Join(rootDir, "tests/fixtures/books.json")
	if err := writeFixture(booksPath, booksToExport); err != nil {
		log.Fatalf("Error writing books fixture: %v", err)
	}
	log.Printf("Successfully created books fixture: %s", booksPath)
}

func writeFixture(path string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
