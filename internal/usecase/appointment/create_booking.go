package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/navalhaclub/booking-api/internal/audit"
	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/timezone"
	"github.com/navalhaclub/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID      uint
	ProfessionalID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	ClientName  string
	ClientPhone string
	Notes       string

	// Preenchido quando a criação partiu do painel admin.
	AdminID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	date, err := time.ParseInLocation("2006-01-02", in.Date, timezone.Location(uc.tz))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	clock := validators.NormalizeClock(in.Time)
	if !validators.IsClock(clock) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	prof, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}
	if !prof.Active {
		return nil, httperr.ErrBusiness("professional_inactive")
	}

	duration := svc.DurationMinutes
	if duration <= 0 {
		duration = schedule.DefaultServiceDuration
	}

	ap := &models.Appointment{
		ServiceID:       svc.ID,
		ProfessionalID:  &prof.ID,
		AppointmentDate: date,
		AppointmentTime: clock,
		ClientName:      strings.TrimSpace(in.ClientName),
		ClientPhone:     validators.CleanPhone(in.ClientPhone),
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	// A checagem de conflito roda dentro da transação do insert,
	// rederivando tudo do estado atual — nunca confia no "eu vi esse
	// horário livre" do cliente.
	if err := uc.repo.CreateWithConflictCheck(ctx, ap, duration); err != nil {
		if domain.IsConflict(err) {
			uc.audit.Dispatch(audit.Event{
				AdminID: in.AdminID,
				Action:  "appointment_conflict",
				Entity:  "appointment",
				Metadata: map[string]any{
					"date": in.Date,
					"time": clock,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  in.AdminID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
