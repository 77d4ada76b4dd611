package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/luxepet-health/clinic-api/internal/config"
	"github.com/luxepet-health/clinic-api/internal/models"
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
		&models.User{},
		&models.Pet{},
		&models.Appointment{},
		&models.CarePlan{},
		&models.AuditLog{},
		&models.FolioCounter{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Única fila del contador de folios; arranca en el total de
	// mascotas ya registradas para no repetir números.
	db.Exec(`
        INSERT INTO folio_counters (id, value)
        SELECT 1, COALESCE((SELECT COUNT(*) FROM pets), 0)
        WHERE NOT EXISTS (SELECT 1 FROM folio_counters WHERE id = 1)
    `)

	return db
}
