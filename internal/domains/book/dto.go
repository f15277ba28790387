package book

import "github.com/samber/lo"

// BookRequest - POST /v1/books, PUT /v1/books/:id
type BookRequest struct {
	ID         *int64 `json:"id,omitempty"`
	Title      string `json:"title"`
	Year       int    `json:"year"`
	AuthorID   *int64 `json:"author_id"`
	CategoryID *int64 `json:"category_id"`
}

// BookResponse - book as returned by the API; absent references are null
type BookResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Year       int    `json:"year"`
	AuthorID   *int64 `json:"author_id"`
	CategoryID *int64 `json:"category_id"`
}

func (req *BookRequest) ToEntity() *Book {
	return &Book{
		ID:         lo.FromPtr(req.ID),
		Title:      req.Title,
		Year:       req.Year,
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
	}
}

func (b Book) ToResponse() BookResponse {
	return BookResponse{
		ID:         b.ID,
		Title:      b.Title,
		Year:       b.Year,
		AuthorID:   b.AuthorID,
		CategoryID: b.CategoryID,
	}
}

func ToResponseList(books []Book) []BookResponse {
	return lo.Map(books, func(b Book, _ int) BookResponse {
		return b.ToResponse()
	})
}
