// Package dto holds the request and response shapes of the HTTP API.
// Response structs enumerate exactly the fields a resource emits; back
// references and the user's password are excluded by construction, so
// nothing here can serialize a cycle.
package dto

import (
	"time"

	"bookshelf/internal/models"
)

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUser(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type AuthorResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Bio       *string `json:"bio"`
	BirthYear *int    `json:"birth_year"`
	UserID    *int64  `json:"user_id"`
}

func FromAuthor(a models.Author) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Bio:       a.Bio,
		BirthYear: a.BirthYear,
		UserID:    a.UserID,
	}
}

type CategoryResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	BackgroundImage *string `json:"background_image"`
}

func FromCategory(c models.Category) CategoryResponse {
	return CategoryResponse{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		BackgroundImage: c.BackgroundImage,
	}
}

type BookResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	ISBN            *string `json:"isbn"`
	PublicationYear *int    `json:"publication_year"`
	AuthorID        int64   `json:"author_id"`
	CategoryID      int64   `json:"category_id"`
	CreatedBy       int64   `json:"created_by"`
}

func FromBook(b models.Book) BookResponse {
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Description:     b.Description,
		ISBN:            b.ISBN,
		PublicationYear: b.PublicationYear,
		AuthorID:        b.AuthorID,
		CategoryID:      b.CategoryID,
		CreatedBy:       b.CreatedBy,
	}
}

type ReviewResponse struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int64     `json:"user_id"`
	BookID    int64     `json:"book_id"`
}

func FromReview(r models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		Rating:    r.Rating,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UserID:    r.UserID,
		BookID:    r.BookID,
	}
}

type CollectionResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	BookID    int64     `json:"book_id"`
	Status    string    `json:"status"`
	DateAdded time.Time `json:"date_added"`
}

func FromCollection(c models.UserBookCollection) CollectionResponse {
	return CollectionResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		BookID:    c.BookID,
		Status:    c.Status,
		DateAdded: c.DateAdded,
	}
}
