package models

import "time"

type User struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // Not show in JSON
	Role      string    `json:"role" gorm:"size:20;default:'reader'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations, declared so the store enforces the cascades.
	// Never serialized: a user's reviews, authors and collections are
	// reachable only through their own resources.
	Authors     []Author             `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Reviews     []Review             `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Collections []UserBookCollection `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (User) TableName() string {
	return "users"
}
