package models

import "time"

// UserBookCollection links a user to a book on their shelf. DateAdded
// defaults to the insertion time but callers may supply their own.
type UserBookCollection struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	BookID    int64     `json:"book_id" gorm:"not null;index"`
	Status    string    `json:"status" gorm:"size:20;not null"`
	DateAdded time.Time `json:"date_added" gorm:"default:CURRENT_TIMESTAMP"`
}

func (UserBookCollection) TableName() string {
	return "user_book_collections"
}
