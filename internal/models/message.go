package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message сообщение в комнате, неизменяемо после создания.
// UserID nil для сообщений бота.
type Message struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RoomID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID    *uuid.UUID `gorm:"type:uuid"`
	Content   string     `gorm:"not null"`
	IsBot     bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"index"`

	Profile *Profile `gorm:"foreignKey:UserID"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
