package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shvendra/bookmyworker-back/config"
	"github.com/shvendra/bookmyworker-back/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	// TranslateError makes unique-index violations surface as
	// gorm.ErrDuplicatedKey, which the ERN allocator and the interest
	// registry rely on.
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Requirement{},
		&models.RequirementInterest{},
		&models.WorkerAttendance{},
		&models.WorkerProfile{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
