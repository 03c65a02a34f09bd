package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrRatingRange is returned whenever a review rating falls outside 1..5.
var ErrRatingRange = errors.New("rating must be between 1 and 5")

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	BookID    int64     `json:"book_id" gorm:"not null;index"`
}

// BeforeSave guards the rating range on every insert and update, in
// addition to the check constraint.
func (r *Review) BeforeSave(tx *gorm.DB) error {
	if r.Rating < 1 || r.Rating > 5 {
		return ErrRatingRange
	}
	return nil
}

func (Review) TableName() string {
	return "reviews"
}
