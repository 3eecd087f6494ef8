package books

import "time"

type NewBookRequest struct {
	Title  string `json:"book_name"`
	Author string `json:"author_name"`
}

type Book struct {
	Id        string    `json:"id"`
	Title     string    `json:"book_name"`
	Author    string    `json:"author_name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AllBooksResponse struct {
	Books []Book `json:"books"`
}
