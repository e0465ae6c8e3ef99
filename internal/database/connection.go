package database

import (
	"errors"

	"github.com/thereayou/chattr/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func (d *Database) Connect(dsn string) error {
	if dsn == "" {
		return errors.New("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}

	d.db = db

	return nil
}

// Migrate выполняет автомиграцию всех моделей
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Interest{},
		&models.UserInterest{},
		&models.ChatRoom{},
		&models.RoomMember{},
		&models.Message{},
		&models.Friend{},
		&models.DMRoom{},
		&models.DMMessage{},
	)
}
