package books

import (
	"context"
	"errors"

	"github.com/Mayuresh351/bookReviewSystem/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// AddBook creates a book entry with an empty review collection and zeroed
// totals. The same title/author pair can only be registered once.
func AddBook(db *mongodb.DB, ctx context.Context, req NewBookRequest) (Book, error) {
	_, err := db.GetBookByTitleAndAuthor(ctx, req.Title, req.Author)
	if err == nil {
		return Book{}, ErrBookAlreadyExists
	}
	if !errors.Is(err, mongodb.ErrRecordNotFound) {
		return Book{}, err
	}

	bookDb, err := db.AddBook(ctx, mongodb.BookDb{
		Title:  req.Title,
		Author: req.Author,
	})
	if err != nil {
		// The unique title+author index closes the check-then-insert window.
		if mongo.IsDuplicateKeyError(err) {
			return Book{}, ErrBookAlreadyExists
		}
		return Book{}, err
	}

	return MapDbBookToApiBook(bookDb), nil
}

func GetBooksInRange(db *mongodb.DB, ctx context.Context, startId, endId string) ([]Book, error) {
	booksDb, err := db.GetBooksInRange(ctx, startId, endId)
	if err != nil {
		return nil, err
	}

	allBooks := make([]Book, len(booksDb))
	for i, bookDb := range booksDb {
		allBooks[i] = MapDbBookToApiBook(bookDb)
	}
	return allBooks, nil
}

func SearchBooks(db *mongodb.DB, ctx context.Context, query string) ([]Book, error) {
	booksDb, err := db.SearchBooks(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]Book, len(booksDb))
	for i, bookDb := range booksDb {
		results[i] = MapDbBookToApiBook(bookDb)
	}
	return results, nil
}
