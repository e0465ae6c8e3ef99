package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DMRoom приватная комната на двоих. Пара нормализуется (UserAID < UserBID),
// уникальный индекс гарантирует одну комнату на пару.
type DMRoom struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserAID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_dm_pair"`
	UserBID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_dm_pair"`
	CreatedAt time.Time

	UserA *Profile `gorm:"foreignKey:UserAID"`
	UserB *Profile `gorm:"foreignKey:UserBID"`
}

func (r *DMRoom) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// NormalizePair приводит пару к каноническому порядку
func NormalizePair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() > b.String() {
		return b, a
	}
	return a, b
}

type DMMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoomID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`

	Sender *Profile `gorm:"foreignKey:SenderID"`
}

func (m *DMMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
