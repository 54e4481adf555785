package appointment

import (
	"context"

	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository

	// Template usado quando não há horário configurado; dado armazenado
	// tem precedência. Injetado, nunca singleton.
	defaultWeek [7]schedule.DaySchedule

	tz string
}

func NewGetAvailability(
	repo domain.Repository,
	defaultWeek [7]schedule.DaySchedule,
	tz string,
) *GetAvailability {
	return &GetAvailability{
		repo:        repo,
		defaultWeek: defaultWeek,
		tz:          tz,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.AvailabilityResult, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	duration := svc.DurationMinutes
	if duration <= 0 {
		duration = schedule.DefaultServiceDuration
	}

	weekday := int(in.Date.Weekday())

	// Horário do dia: linha armazenada > template injetado. Falha de
	// leitura degrada para o template em vez de derrubar a consulta.
	hours, err := uc.repo.ListBusinessHours(ctx)
	if err != nil {
		hours = nil
	}

	day := uc.defaultWeek[weekday]
	for _, h := range hours {
		if h.DayOfWeek == weekday {
			day = schedule.DaySchedule{
				Open:      h.IsOpen,
				OpenTime:  h.OpenTime,
				CloseTime: h.CloseTime,
			}
			break
		}
	}

	appts, err := uc.repo.ListActiveAppointments(ctx, in.ProfessionalID, in.Date)
	if err != nil {
		return nil, err
	}

	// Bloqueios indisponíveis não derrubam a consulta.
	blocks, err := uc.repo.ListBlockedTimesForDate(ctx, in.ProfessionalID, in.Date)
	if err != nil {
		blocks = nil
	}

	nowMinutes := -1
	if timezone.IsToday(in.Date, uc.tz) {
		now := timezone.NowIn(uc.tz)
		nowMinutes = now.Hour()*60 + now.Minute()
	}

	slots := schedule.AvailableSlots(
		day,
		duration,
		schedule.OccupiedIntervals(appts),
		schedule.BlockWindows(blocks, in.Date),
		nowMinutes,
	)

	return &domain.AvailabilityResult{
		Slots:         slots,
		BusinessHours: hours,
		Appointments:  appts,
		BlockedTimes:  blocks,
	}, nil
}
