package database

import (
	"github.com/google/uuid"
	"github.com/thereayou/chattr/internal/models"
	"gorm.io/gorm"
)

// FindActiveRelationship ищет pending/accepted запись для неупорядоченной пары.
// Отклоненные запросы не блокируют повторную отправку.
func (d *Database) FindActiveRelationship(a, b uuid.UUID) (*models.Friend, error) {
	var friend models.Friend
	err := d.db.
		Where("((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)) AND status IN ?",
			a, b, b, a, []models.FriendStatus{models.FriendPending, models.FriendAccepted}).
		First(&friend).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &friend, nil
}

func (d *Database) CreateFriendRequest(friend *models.Friend) error {
	return d.db.Create(friend).Error
}

func (d *Database) GetFriendRequest(id string) (*models.Friend, error) {
	var friend models.Friend
	if err := d.db.Preload("Sender").Preload("Receiver").First(&friend, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &friend, nil
}

func (d *Database) UpdateFriendStatus(id uuid.UUID, status models.FriendStatus) error {
	return d.db.Model(&models.Friend{}).Where("id = ?", id).Update("status", status).Error
}

// DeleteFriendRequest отмена исходящего запроса: строка просто удаляется
func (d *Database) DeleteFriendRequest(id uuid.UUID) error {
	return d.db.Delete(&models.Friend{}, "id = ?", id).Error
}

// ListFriends принятые связи пользователя с обоими профилями
func (d *Database) ListFriends(userID uuid.UUID) ([]models.Friend, error) {
	var friends []models.Friend
	err := d.db.
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?", userID, userID, models.FriendAccepted).
		Preload("Sender").
		Preload("Receiver").
		Order("created_at ASC").
		Find(&friends).Error
	return friends, err
}

func (d *Database) ListIncomingRequests(userID uuid.UUID) ([]models.Friend, error) {
	var friends []models.Friend
	err := d.db.
		Where("receiver_id = ? AND status = ?", userID, models.FriendPending).
		Preload("Sender").
		Order("created_at ASC").
		Find(&friends).Error
	return friends, err
}

func (d *Database) ListOutgoingRequests(userID uuid.UUID) ([]models.Friend, error) {
	var friends []models.Friend
	err := d.db.
		Where("sender_id = ? AND status = ?", userID, models.FriendPending).
		Preload("Receiver").
		Order("created_at ASC").
		Find(&friends).Error
	return friends, err
}
