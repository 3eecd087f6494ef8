package books

import "github.com/Mayuresh351/bookReviewSystem/internal/mongodb"

func MapDbBookToApiBook(bookDb mongodb.BookDb) Book {
	return Book{
		Id:        bookDb.Id,
		Title:     bookDb.Title,
		Author:    bookDb.Author,
		CreatedAt: bookDb.CreatedAt,
		UpdatedAt: bookDb.UpdatedAt,
	}
}
