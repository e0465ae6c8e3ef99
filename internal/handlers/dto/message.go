package dto

import (
	"time"

	"github.com/google/uuid"
)

// MessagePayload структура для входящих сообщений
type MessagePayload struct {
	Content string `json:"content" binding:"required"`
}

// MessageResponse структура для исходящих сообщений
type MessageResponse struct {
	ID        uuid.UUID  `json:"id"`
	RoomID    uuid.UUID  `json:"room_id"`
	UserID    *uuid.UUID `json:"user_id"`
	Content   string     `json:"content"`
	IsBot     bool       `json:"is_bot"`
	CreatedAt time.Time  `json:"created_at"`
	Profile   *UserInfo  `json:"profile,omitempty"`
}

// DMMessageResponse личное сообщение с профилем отправителя
type DMMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Sender    *UserInfo `json:"sender,omitempty"`
}

type UserInfo struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}
