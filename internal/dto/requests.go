package dto

import "bookshelf/internal/models"

// CreateBookRequest used for POST /books. Foreign keys are pointers so
// binding can tell a missing field apart from a zero value.
type CreateBookRequest struct {
	Title           string  `json:"title" binding:"required"`
	AuthorID        *int64  `json:"author_id" binding:"required"`
	CategoryID      *int64  `json:"category_id" binding:"required"`
	CreatedBy       *int64  `json:"created_by" binding:"required"`
	Description     *string `json:"description"`
	ISBN            *string `json:"isbn"`
	PublicationYear *int    `json:"publication_year"`
}

func (r CreateBookRequest) ToModel() models.Book {
	return models.Book{
		Title:           r.Title,
		AuthorID:        *r.AuthorID,
		CategoryID:      *r.CategoryID,
		CreatedBy:       *r.CreatedBy,
		Description:     r.Description,
		ISBN:            r.ISBN,
		PublicationYear: r.PublicationYear,
	}
}

// LoginRequest used for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
