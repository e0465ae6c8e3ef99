package database

import (
	"github.com/google/uuid"
	"github.com/thereayou/chattr/internal/models"
	"gorm.io/gorm"
)

func (d *Database) ListInterests() ([]models.Interest, error) {
	var interests []models.Interest
	err := d.db.Order("name ASC").Find(&interests).Error
	return interests, err
}

func (d *Database) GetUserInterestIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var rows []models.UserInterest
	if err := d.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.InterestID
	}
	return ids, nil
}

// ReplaceUserInterests полностью заменяет выбранные интересы:
// удаляем все, вставляем новые, в одной транзакции
func (d *Database) ReplaceUserInterests(userID uuid.UUID, interestIDs []uuid.UUID) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserInterest{}).Error; err != nil {
			return err
		}

		if len(interestIDs) == 0 {
			return nil
		}

		rows := make([]models.UserInterest, len(interestIDs))
		for i, id := range interestIDs {
			rows[i] = models.UserInterest{UserID: userID, InterestID: id}
		}
		return tx.Create(&rows).Error
	})
}
