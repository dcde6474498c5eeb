package database

import (
	"log"
	"symptomtracker/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.UserSettings{},
		&models.PainEntry{},
		&models.WellnessEntry{},
		&models.DiaryEntry{},
		&models.PhysicianInfo{},
		&models.Notification{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
