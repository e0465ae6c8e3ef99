package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/chattr/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetRoomsForUser возвращает комнаты по выбранным интересам пользователя
func (d *Database) GetRoomsForUser(userID uuid.UUID) ([]models.ChatRoom, error) {
	interestIDs, err := d.GetUserInterestIDs(userID)
	if err != nil {
		return nil, err
	}

	if len(interestIDs) == 0 {
		return []models.ChatRoom{}, nil
	}

	var rooms []models.ChatRoom
	err = d.db.
		Where("interest_id IN ?", interestIDs).
		Preload("Interest").
		Order("created_at ASC").
		Find(&rooms).Error
	return rooms, err
}

func (d *Database) GetRoom(id string) (*models.ChatRoom, error) {
	var room models.ChatRoom
	if err := d.db.Preload("Interest").First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// GetLastMessage последнее сообщение комнаты для превью в списке
func (d *Database) GetLastMessage(roomID uuid.UUID) (*models.Message, error) {
	var message models.Message
	err := d.db.
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		First(&message).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// UpsertRoomMember обновляет отметку присутствия при входе/выходе
func (d *Database) UpsertRoomMember(roomID, userID uuid.UUID) error {
	member := models.RoomMember{
		RoomID:   roomID,
		UserID:   userID,
		LastSeen: time.Now(),
	}
	return d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_seen"}),
	}).Create(&member).Error
}
