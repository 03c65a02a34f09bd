package models

type Category struct {
	ID              int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string  `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description     *string `json:"description"`
	BackgroundImage *string `json:"background_image" gorm:"size:255"`

	Books []Book `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;"`
}

func (Category) TableName() string {
	return "categories"
}
