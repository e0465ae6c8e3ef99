package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatRoom комната по интересу, создается при сидинге каталога
type ChatRoom struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string
	InterestID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time

	Interest *Interest `gorm:"foreignKey:InterestID"`
}

func (r *ChatRoom) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RoomMember отметка присутствия, не членство
type RoomMember struct {
	RoomID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	LastSeen time.Time
}
