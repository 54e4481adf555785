package appointment

import (
	"context"
	"time"

	"github.com/navalhaclub/booking-api/internal/models"
)

type Repository interface {
	// -------- Service / Professional --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	// -------- Business hours --------
	ListBusinessHours(
		ctx context.Context,
	) ([]models.BusinessHours, error)

	// -------- Availability reads --------
	ListActiveAppointments(
		ctx context.Context,
		professionalID *uint,
		date time.Time,
	) ([]models.Appointment, error)

	ListBlockedTimesForDate(
		ctx context.Context,
		professionalID *uint,
		date time.Time,
	) ([]models.BlockedTime, error)

	// -------- Appointment (create / conflict) --------
	// CreateWithConflictCheck executa a verificação de sobreposição e o
	// insert dentro da mesma transação, relendo as durações dos serviços.
	// Devolve ConflictError na colisão.
	CreateWithConflictCheck(
		ctx context.Context,
		ap *models.Appointment,
		durationMin int,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Reporting --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)
}
