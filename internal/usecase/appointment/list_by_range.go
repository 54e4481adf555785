package appointment

import (
	"context"
	"time"

	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/dto"
)

type ListAppointmentsByRange struct {
	repo domain.Repository
}

func NewListAppointmentsByRange(
	repo domain.Repository,
) *ListAppointmentsByRange {
	return &ListAppointmentsByRange{
		repo: repo,
	}
}

// Execute lista todos os agendamentos (inclusive cancelados) no
// intervalo meio-aberto [from, to). Um dia só: to = from + 1 dia.
func (uc *ListAppointmentsByRange) Execute(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:               ap.ID,
			AppointmentDate:  ap.AppointmentDate.Format("2006-01-02"),
			AppointmentTime:  ap.AppointmentTime,
			Status:           ap.Status,
			ClientName:       ap.ClientName,
			ClientPhone:      ap.ClientPhone,
			ServiceName:      ap.Service.Name,
			ServicePrice:     ap.Service.Price,
			ProfessionalName: ap.Professional.Name,
			Notes:            ap.Notes,
		})
	}

	return out, nil
}
