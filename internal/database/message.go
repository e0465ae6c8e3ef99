package database

import (
	"github.com/google/uuid"
	"github.com/thereayou/chattr/internal/models"
)

func (d *Database) SaveMessage(message *models.Message) error {
	return d.db.Create(message).Error
}

func (d *Database) GetMessage(id string) (*models.Message, error) {
	var message models.Message
	if err := d.db.Preload("Profile").First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// GetRoomMessages возвращает страницу сообщений, старые первыми
func (d *Database) GetRoomMessages(roomID uuid.UUID, limit int) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Limit(limit).
		Preload("Profile").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	// Разворачиваем порядок, чтобы старые сообщения были первыми
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// GetRecentMessages последние n сообщений в хронологическом порядке,
// используется ботом как контекст диалога
func (d *Database) GetRecentMessages(roomID uuid.UUID, n int) ([]models.Message, error) {
	return d.GetRoomMessages(roomID, n)
}
