package models

type Author struct {
	ID        int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string  `json:"name" gorm:"size:100;not null"`
	Bio       *string `json:"bio"`
	BirthYear *int    `json:"birth_year"`
	UserID    *int64  `json:"user_id" gorm:"index"` // managing user, optional

	Books []Book `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}

func (Author) TableName() string {
	return "authors"
}
