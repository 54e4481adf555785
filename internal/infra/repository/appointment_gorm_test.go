package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/navalhaclub/booking-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Professional{},
		&models.Appointment{},
		&models.BlockedTime{},
		&models.BusinessHours{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestListActiveAppointments(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	svc := models.Service{Name: "Corte", DurationMinutes: 30, Active: true}
	assert.NoError(t, db.Create(&svc).Error)

	pro := models.Professional{Name: "João", Active: true}
	other := models.Professional{Name: "Pedro", Active: true}
	assert.NoError(t, db.Create(&pro).Error)
	assert.NoError(t, db.Create(&other).Error)

	date := seedDate(2026, 9, 7)

	rows := []models.Appointment{
		{ServiceID: svc.ID, ProfessionalID: &pro.ID, AppointmentDate: date, AppointmentTime: "09:00", ClientName: "A", ClientPhone: "11911111111", Status: "scheduled"},
		{ServiceID: svc.ID, ProfessionalID: &pro.ID, AppointmentDate: date, AppointmentTime: "10:00", ClientName: "B", ClientPhone: "11922222222", Status: "completed"},
		{ServiceID: svc.ID, ProfessionalID: &pro.ID, AppointmentDate: date, AppointmentTime: "11:00", ClientName: "C", ClientPhone: "11933333333", Status: "cancelled"},
		{ServiceID: svc.ID, ProfessionalID: &other.ID, AppointmentDate: date, AppointmentTime: "09:00", ClientName: "D", ClientPhone: "11944444444", Status: "scheduled"},
		{ServiceID: svc.ID, ProfessionalID: &pro.ID, AppointmentDate: seedDate(2026, 9, 8), AppointmentTime: "09:00", ClientName: "E", ClientPhone: "11955555555", Status: "scheduled"},
	}
	for i := range rows {
		assert.NoError(t, db.Create(&rows[i]).Error)
	}

	appts, err := repo.ListActiveAppointments(ctx, &pro.ID, date)

	assert.NoError(t, err)
	// Cancelado fora; concluído ainda ocupa o horário do dia.
	assert.Len(t, appts, 2)
	assert.Equal(t, "09:00", appts[0].AppointmentTime)
	assert.Equal(t, "10:00", appts[1].AppointmentTime)
	assert.Equal(t, 30, appts[0].Service.DurationMinutes) // preload
}

func TestListActiveAppointmentsAllProfessionals(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	svc := models.Service{Name: "Corte", DurationMinutes: 30, Active: true}
	assert.NoError(t, db.Create(&svc).Error)
	pro := models.Professional{Name: "João", Active: true}
	other := models.Professional{Name: "Pedro", Active: true}
	assert.NoError(t, db.Create(&pro).Error)
	assert.NoError(t, db.Create(&other).Error)

	date := seedDate(2026, 9, 7)
	for _, id := range []*uint{&pro.ID, &other.ID} {
		ap := models.Appointment{ServiceID: svc.ID, ProfessionalID: id, AppointmentDate: date, AppointmentTime: "09:00", ClientName: "X", ClientPhone: "11900000000", Status: "scheduled"}
		assert.NoError(t, db.Create(&ap).Error)
	}

	appts, err := repo.ListActiveAppointments(ctx, nil, date)

	assert.NoError(t, err)
	assert.Len(t, appts, 2)
}

func TestListBlockedTimesForDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	pro := models.Professional{Name: "João", Active: true}
	assert.NoError(t, db.Create(&pro).Error)

	wednesday := seedDate(2026, 9, 2)
	dow := int(wednesday.Weekday())
	otherDow := (dow + 1) % 7

	blocks := []models.BlockedTime{
		{ProfessionalID: pro.ID, BlockType: models.BlockTypeRecurring, DayOfWeek: &dow, StartTime: "12:00", EndTime: "13:00", IsActive: true},
		{ProfessionalID: pro.ID, BlockType: models.BlockTypeRecurring, DayOfWeek: &otherDow, StartTime: "09:00", EndTime: "10:00", IsActive: true},
		{ProfessionalID: pro.ID, BlockType: models.BlockTypeSpecific, SpecificDate: &wednesday, StartTime: "16:00", EndTime: "17:00", IsActive: true},
		{ProfessionalID: pro.ID, BlockType: models.BlockTypeRecurring, DayOfWeek: &dow, StartTime: "14:00", EndTime: "15:00", IsActive: false},
	}
	for i := range blocks {
		assert.NoError(t, db.Create(&blocks[i]).Error)
	}

	got, err := repo.ListBlockedTimesForDate(ctx, &pro.ID, wednesday)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListAppointmentsForPeriodHalfOpen(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	svc := models.Service{Name: "Corte", DurationMinutes: 30, Active: true}
	assert.NoError(t, db.Create(&svc).Error)
	pro := models.Professional{Name: "João", Active: true}
	assert.NoError(t, db.Create(&pro).Error)

	for _, d := range []int{1, 2, 3} {
		ap := models.Appointment{
			ServiceID:       svc.ID,
			ProfessionalID:  &pro.ID,
			AppointmentDate: seedDate(2026, 9, d),
			AppointmentTime: "09:00",
			ClientName:      "X",
			ClientPhone:     "11900000000",
			Status:          "scheduled",
		}
		assert.NoError(t, db.Create(&ap).Error)
	}

	// [01, 03): dias 1 e 2, dia 3 fora.
	got, err := repo.ListAppointmentsForPeriod(ctx, seedDate(2026, 9, 1), seedDate(2026, 9, 3))

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].AppointmentDate.Day())
	assert.Equal(t, 2, got[1].AppointmentDate.Day())
}

func TestGetAndUpdateAppointment(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	svc := models.Service{Name: "Corte", DurationMinutes: 30, Active: true}
	assert.NoError(t, db.Create(&svc).Error)
	pro := models.Professional{Name: "João", Active: true}
	assert.NoError(t, db.Create(&pro).Error)

	ap := models.Appointment{
		ServiceID:       svc.ID,
		ProfessionalID:  &pro.ID,
		AppointmentDate: seedDate(2026, 9, 7),
		AppointmentTime: "09:00",
		ClientName:      "Maria",
		ClientPhone:     "11987654321",
		Status:          "scheduled",
	}
	assert.NoError(t, db.Create(&ap).Error)

	loaded, err := repo.GetAppointment(ctx, ap.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Corte", loaded.Service.Name)

	now := time.Now()
	loaded.Status = "cancelled"
	loaded.CancelledAt = &now
	assert.NoError(t, repo.UpdateAppointment(ctx, loaded))

	reloaded, err := repo.GetAppointment(ctx, ap.ID)
	assert.NoError(t, err)
	assert.Equal(t, "cancelled", reloaded.Status)
	assert.NotNil(t, reloaded.CancelledAt)
}
