package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
)

// Data fixa no futuro (uma segunda-feira) para nunca acionar o corte
// de "hoje".
func futureMonday() time.Time {
	return time.Date(2030, 9, 2, 0, 0, 0, 0, time.UTC)
}

func TestGetAvailabilityUsesDefaultWeek(t *testing.T) {
	repo := new(MockRepository)
	uc := NewGetAvailability(repo, schedule.DefaultWeek(), testTZ)

	repo.On("GetService", mock.Anything, uint(1)).Return(activeService(), nil)
	repo.On("ListBusinessHours", mock.Anything).Return([]models.BusinessHours{}, nil)
	repo.On("ListActiveAppointments", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Appointment{}, nil)
	repo.On("ListBlockedTimesForDate", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.BlockedTime{}, nil)

	result, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      futureMonday(),
		ServiceID: 1,
	})

	assert.NoError(t, err)
	// Segunda padrão 08:00-19:00, serviço de 30min.
	assert.Len(t, result.Slots, 43)
	assert.Equal(t, "08:00", result.Slots[0])
	assert.Equal(t, "18:30", result.Slots[len(result.Slots)-1])
}

func TestGetAvailabilityStoredHoursWin(t *testing.T) {
	repo := new(MockRepository)
	uc := NewGetAvailability(repo, schedule.DefaultWeek(), testTZ)

	monday := futureMonday()
	weekday := int(monday.Weekday())

	repo.On("GetService", mock.Anything, uint(1)).Return(activeService(), nil)
	repo.On("ListBusinessHours", mock.Anything).Return([]models.BusinessHours{
		{DayOfWeek: weekday, IsOpen: true, OpenTime: "10:00", CloseTime: "12:00"},
	}, nil)
	repo.On("ListActiveAppointments", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Appointment{}, nil)
	repo.On("ListBlockedTimesForDate", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.BlockedTime{}, nil)

	result, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      monday,
		ServiceID: 1,
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:15", "10:30", "10:45", "11:00", "11:15", "11:30"}, result.Slots)
}

func TestGetAvailabilityStoredClosedDayWins(t *testing.T) {
	repo := new(MockRepository)
	uc := NewGetAvailability(repo, schedule.DefaultWeek(), testTZ)

	monday := futureMonday()

	repo.On("GetService", mock.Anything, uint(1)).Return(activeService(), nil)
	repo.On("ListBusinessHours", mock.Anything).Return([]models.BusinessHours{
		{DayOfWeek: int(monday.Weekday()), IsOpen: false, OpenTime: "08:00", CloseTime: "19:00"},
	}, nil)
	repo.On("ListActiveAppointments", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Appointment{}, nil)
	repo.On("ListBlockedTimesForDate", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.BlockedTime{}, nil)

	result, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      monday,
		ServiceID: 1,
	})

	assert.NoError(t, err)
	assert.Empty(t, result.Slots)
}

func TestGetAvailabilityFiltersBookedAndBlocked(t *testing.T) {
	repo := new(MockRepository)
	uc := NewGetAvailability(repo, schedule.DefaultWeek(), testTZ)

	monday := futureMonday()
	dow := int(monday.Weekday())

	repo.On("GetService", mock.Anything, uint(1)).Return(activeService(), nil)
	repo.On("ListBusinessHours", mock.Anything).Return([]models.BusinessHours{}, nil)
	repo.On("ListActiveAppointments", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Appointment{
			{
				AppointmentTime: "09:00",
				Service:         models.Service{DurationMinutes: 30},
			},
		}, nil)
	repo.On("ListBlockedTimesForDate", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.BlockedTime{
			{
				BlockType: models.BlockTypeRecurring,
				DayOfWeek: &dow,
				StartTime: "12:00",
				EndTime:   "13:00",
				IsActive:  true,
			},
		}, nil)

	result, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      monday,
		ServiceID: 1,
	})

	assert.NoError(t, err)
	assert.NotContains(t, result.Slots, "09:00")
	assert.NotContains(t, result.Slots, "12:30")
	assert.Contains(t, result.Slots, "09:30")
	assert.Contains(t, result.Slots, "13:00")
	assert.Len(t, result.Appointments, 1)
	assert.Len(t, result.BlockedTimes, 1)
}

func TestGetAvailabilityServiceNotFound(t *testing.T) {
	repo := new(MockRepository)
	uc := NewGetAvailability(repo, schedule.DefaultWeek(), testTZ)

	repo.On("GetService", mock.Anything, uint(99)).Return(nil, errors.New("record not found"))

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      futureMonday(),
		ServiceID: 99,
	})

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestGetAvailabilityHoursReadFailureDegrades(t *testing.T) {
	repo := new(MockRepository)
	uc := NewGetAvailability(repo, schedule.DefaultWeek(), testTZ)

	repo.On("GetService", mock.Anything, uint(1)).Return(activeService(), nil)
	repo.On("ListBusinessHours", mock.Anything).Return(nil, errors.New("db down"))
	repo.On("ListActiveAppointments", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Appointment{}, nil)
	repo.On("ListBlockedTimesForDate", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.BlockedTime{}, nil)

	result, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:      futureMonday(),
		ServiceID: 1,
	})

	// Falha na leitura do horário cai no template, não derruba.
	assert.NoError(t, err)
	assert.Len(t, result.Slots, 43)
}
