package database

import (
	"github.com/thereayou/chattr/internal/models"
	"gorm.io/gorm"
)

// CreateUser сохраняет аккаунт вместе с профилем в одной транзакции
func (d *Database) CreateUser(user *models.User, profile *models.Profile) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.ID = user.ID
		return tx.Create(profile).Error
	})
}

func (d *Database) FindUserByEmail(email string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) GetProfile(id string) (*models.Profile, error) {
	profile := models.Profile{}
	if err := d.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (d *Database) UpdateProfile(profile *models.Profile) error {
	return d.db.Save(profile).Error
}

// FindProfileByUsername ищет профиль без учета регистра
func (d *Database) FindProfileByUsername(username string) (*models.Profile, error) {
	profile := models.Profile{}
	if err := d.db.Where("LOWER(username) = LOWER(?)", username).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
