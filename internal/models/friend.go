package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FriendStatus string

const (
	FriendPending  FriendStatus = "pending"
	FriendAccepted FriendStatus = "accepted"
	FriendDeclined FriendStatus = "declined"
	FriendBlocked  FriendStatus = "blocked"
)

// Friend запрос в друзья: направленный, после accept действует в обе стороны.
// Не больше одной активной (pending/accepted) записи на неупорядоченную пару.
type Friend struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey"`
	SenderID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Status     FriendStatus `gorm:"not null;check:status IN ('pending','accepted','declined','blocked')"`
	CreatedAt  time.Time

	Sender   *Profile `gorm:"foreignKey:SenderID"`
	Receiver *Profile `gorm:"foreignKey:ReceiverID"`
}

func (f *Friend) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
