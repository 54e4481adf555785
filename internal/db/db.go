package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/config"
	"github.com/navalhaclub/booking-api/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Professional{},
		&models.BusinessHours{},
		&models.Appointment{},
		&models.BlockedTime{},
		&models.AdminUser{},
		&models.AdminSession{},
		&models.Subscription{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// Backstop contra corrida de check-then-insert. Não cobre
	// sobreposição com durações variáveis; a checagem principal roda na
	// transação do insert (ver CreateWithConflictCheck).
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uq_appointments_slot
        ON appointments (professional_id, appointment_date, appointment_time)
        WHERE status = 'scheduled'
    `)

	return db
}
