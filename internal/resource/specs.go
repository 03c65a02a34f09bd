package resource

import "bookshelf/internal/models"

// Per-entity field specs. These are the single source of truth for what a
// client may set on create and patch; everything else (ids, timestamps
// managed by the store, association fields) stays out of reach.

func UserFields() Spec[models.User] {
	return Spec[models.User]{
		Required: []Field[models.User]{
			{Name: "username", Set: func(u *models.User, v any) error { return SetString(&u.Username, v) }},
			{Name: "email", Set: func(u *models.User, v any) error { return SetString(&u.Email, v) }},
			{Name: "password", Set: func(u *models.User, v any) error { return SetString(&u.Password, v) }},
		},
		Optional: []Field[models.User]{
			{Name: "role", Set: func(u *models.User, v any) error { return SetString(&u.Role, v) }},
		},
	}
}

func AuthorFields() Spec[models.Author] {
	return Spec[models.Author]{
		Required: []Field[models.Author]{
			{Name: "name", Set: func(a *models.Author, v any) error { return SetString(&a.Name, v) }},
		},
		Optional: []Field[models.Author]{
			{Name: "bio", Set: func(a *models.Author, v any) error { return SetStringPtr(&a.Bio, v) }},
			{Name: "birth_year", Set: func(a *models.Author, v any) error { return SetIntPtr(&a.BirthYear, v) }},
			{Name: "user_id", Set: func(a *models.Author, v any) error { return SetInt64Ptr(&a.UserID, v) }},
		},
	}
}

func CategoryFields() Spec[models.Category] {
	return Spec[models.Category]{
		Required: []Field[models.Category]{
			{Name: "name", Set: func(c *models.Category, v any) error { return SetString(&c.Name, v) }},
		},
		Optional: []Field[models.Category]{
			{Name: "description", Set: func(c *models.Category, v any) error { return SetStringPtr(&c.Description, v) }},
			{Name: "background_image", Set: func(c *models.Category, v any) error { return SetStringPtr(&c.BackgroundImage, v) }},
		},
	}
}

func BookFields() Spec[models.Book] {
	return Spec[models.Book]{
		Required: []Field[models.Book]{
			{Name: "title", Set: func(b *models.Book, v any) error { return SetString(&b.Title, v) }},
			{Name: "author_id", Set: func(b *models.Book, v any) error { return SetInt64(&b.AuthorID, v) }},
			{Name: "category_id", Set: func(b *models.Book, v any) error { return SetInt64(&b.CategoryID, v) }},
			{Name: "created_by", Set: func(b *models.Book, v any) error { return SetInt64(&b.CreatedBy, v) }},
		},
		Optional: []Field[models.Book]{
			{Name: "description", Set: func(b *models.Book, v any) error { return SetStringPtr(&b.Description, v) }},
			{Name: "isbn", Set: func(b *models.Book, v any) error { return SetStringPtr(&b.ISBN, v) }},
			{Name: "publication_year", Set: func(b *models.Book, v any) error { return SetIntPtr(&b.PublicationYear, v) }},
		},
	}
}

func ReviewFields() Spec[models.Review] {
	return Spec[models.Review]{
		Required: []Field[models.Review]{
			{Name: "rating", Set: func(r *models.Review, v any) error {
				n, err := asInt(v)
				if err != nil {
					return err
				}
				if n < 1 || n > 5 {
					return models.ErrRatingRange
				}
				r.Rating = n
				return nil
			}},
			{Name: "content", Set: func(r *models.Review, v any) error { return SetString(&r.Content, v) }},
			{Name: "user_id", Set: func(r *models.Review, v any) error { return SetInt64(&r.UserID, v) }},
			{Name: "book_id", Set: func(r *models.Review, v any) error { return SetInt64(&r.BookID, v) }},
		},
	}
}

func CollectionFields() Spec[models.UserBookCollection] {
	return Spec[models.UserBookCollection]{
		Required: []Field[models.UserBookCollection]{
			{Name: "user_id", Set: func(c *models.UserBookCollection, v any) error { return SetInt64(&c.UserID, v) }},
			{Name: "book_id", Set: func(c *models.UserBookCollection, v any) error { return SetInt64(&c.BookID, v) }},
			{Name: "status", Set: func(c *models.UserBookCollection, v any) error { return SetString(&c.Status, v) }},
		},
		Optional: []Field[models.UserBookCollection]{
			{Name: "date_added", Set: func(c *models.UserBookCollection, v any) error { return SetTime(&c.DateAdded, v) }},
		},
	}
}
