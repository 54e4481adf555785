package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Service / Professional
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var prof models.Professional
	if err := r.db.WithContext(ctx).First(&prof, id).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

// --------------------------------------------------
// Business hours
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBusinessHours(
	ctx context.Context,
) ([]models.BusinessHours, error) {

	var hours []models.BusinessHours
	if err := r.db.WithContext(ctx).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

// --------------------------------------------------
// Availability reads
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveAppointments(
	ctx context.Context,
	professionalID *uint,
	date time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Where("appointment_date = ? AND status <> ?", dateOnly(date), "cancelled")

	if professionalID != nil {
		q = q.Where("professional_id = ?", *professionalID)
	}

	var apps []models.Appointment
	if err := q.Order("appointment_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListBlockedTimesForDate(
	ctx context.Context,
	professionalID *uint,
	date time.Time,
) ([]models.BlockedTime, error) {

	dow := int(date.Weekday())

	q := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where(
			"(block_type = ? AND specific_date = ?) OR (block_type = ? AND day_of_week = ?)",
			models.BlockTypeSpecific, dateOnly(date),
			models.BlockTypeRecurring, dow,
		)

	if professionalID != nil {
		q = q.Where("professional_id = ?", *professionalID)
	}

	var blocks []models.BlockedTime
	if err := q.Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateWithConflictCheck tranca os agendamentos do profissional na
// data, rederiva os intervalos ocupados a partir das durações atuais
// dos serviços e só insere se não houver sobreposição. Check e insert
// na mesma transação fecham a corrida entre dois clientes mirando o
// mesmo horário.
func (r *AppointmentGormRepository) CreateWithConflictCheck(
	ctx context.Context,
	ap *models.Appointment,
	durationMin int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var existing []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "appointments"}}).
			Preload("Service").
			Where(
				"professional_id = ? AND appointment_date = ? AND status <> ?",
				ap.ProfessionalID, dateOnly(ap.AppointmentDate), "cancelled",
			).
			Find(&existing).Error; err != nil {
			return err
		}

		occupied := schedule.OccupiedIntervals(existing)
		start := schedule.ToMinutes(ap.AppointmentTime)

		if c := schedule.FindConflict(start, durationMin, occupied); c != nil {
			return domain.ConflictError{Window: c.Window()}
		}

		if err := tx.Create(ap).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return domain.ConflictError{Window: ap.AppointmentTime}
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Professional").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Reporting
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Professional").
		Where("appointment_date >= ? AND appointment_date < ?", dateOnly(from), dateOnly(to)).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
