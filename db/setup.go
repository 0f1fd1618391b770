package db

import (
	"github.com/skilllinker/skilllinker/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDatabase(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return database, nil
}

func MigrateDatabase(database *gorm.DB) error {
	entities := []interface{}{
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Message{},
		&models.Payment{},
		&models.Resume{},
	}

	migrator := database.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := database.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}
