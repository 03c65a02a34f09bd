package models

type Book struct {
	ID              int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title           string  `json:"title" gorm:"size:200;not null"`
	Description     *string `json:"description"`
	ISBN            *string `json:"isbn" gorm:"uniqueIndex;size:13"`
	PublicationYear *int    `json:"publication_year"`
	AuthorID        int64   `json:"author_id" gorm:"not null;index"`
	CategoryID      int64   `json:"category_id" gorm:"not null;index"`
	CreatedBy       int64   `json:"created_by" gorm:"not null;index"`

	// Creator carries the plain foreign key to users; deleting a user does
	// not cascade to the books they submitted.
	Creator *User `json:"-" gorm:"foreignKey:CreatedBy"`

	Reviews     []Review             `json:"-" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;"`
	Collections []UserBookCollection `json:"-" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;"`
}

func (Book) TableName() string {
	return "books"
}
