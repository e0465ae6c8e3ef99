package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/chattr/internal/models"
	"gorm.io/gorm"
)

// GetOrCreateDMRoom находит или создает комнату для неупорядоченной пары.
// Пара нормализована, уникальный индекс закрывает гонку двух создателей:
// при конфликте вставки комнату перечитываем.
func (d *Database) GetOrCreateDMRoom(user1ID, user2ID uuid.UUID) (*models.DMRoom, error) {
	a, b := models.NormalizePair(user1ID, user2ID)

	var room models.DMRoom
	err := d.db.Where("user_a_id = ? AND user_b_id = ?", a, b).First(&room).Error
	if err == nil {
		return &room, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	room = models.DMRoom{
		UserAID:   a,
		UserBID:   b,
		CreatedAt: time.Now(),
	}
	if err := d.db.Create(&room).Error; err != nil {
		// Вторая сторона могла успеть первой
		if ferr := d.db.Where("user_a_id = ? AND user_b_id = ?", a, b).First(&room).Error; ferr == nil {
			return &room, nil
		}
		return nil, err
	}

	return &room, nil
}

func (d *Database) GetDMRoom(id string) (*models.DMRoom, error) {
	var room models.DMRoom
	if err := d.db.Preload("UserA").Preload("UserB").First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (d *Database) SaveDMMessage(message *models.DMMessage) error {
	return d.db.Create(message).Error
}

func (d *Database) GetDMMessage(id string) (*models.DMMessage, error) {
	var message models.DMMessage
	if err := d.db.Preload("Sender").First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// GetDMMessages страница личных сообщений, старые первыми
func (d *Database) GetDMMessages(roomID uuid.UUID, limit int) ([]models.DMMessage, error) {
	var messages []models.DMMessage

	err := d.db.
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Limit(limit).
		Preload("Sender").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
