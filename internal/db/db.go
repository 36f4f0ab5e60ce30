package db

import (
	"log"
	"time"

	"github.com/BruksfildServices01/foodtruck-storefront/internal/config"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/models"
	"github.com/BruksfildServices01/foodtruck-storefront/internal/timezone"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.FoodTruck{},
		&models.User{},
		&models.MenuItem{},
		&models.ScheduleDay{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Trucks antigos sem fuso caem no padrão da plataforma.
	db.Exec(`
        UPDATE food_trucks
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, timezone.DefaultTimezone)

	return db
}
