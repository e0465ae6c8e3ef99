package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Interest статический каталог тем, не редактируется пользователями
type Interest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Icon        string    `gorm:"not null"`
	Color       string    `gorm:"not null"`
	Description string
}

func (i *Interest) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// UserInterest выбранные интересы пользователя, пара уникальна
type UserInterest struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	InterestID uuid.UUID `gorm:"type:uuid;primaryKey"`
}
