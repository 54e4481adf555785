package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
)

const testTZ = "America/Sao_Paulo"

func activeService() *models.Service {
	return &models.Service{ID: 1, Name: "Corte", DurationMinutes: 30, Active: true}
}

func activeProfessional() *models.Professional {
	return &models.Professional{ID: 2, Name: "João", Active: true}
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		ServiceID:      1,
		ProfessionalID: 2,
		Date:           "2026-09-07",
		Time:           "09:00",
		ClientName:     "  Maria Silva  ",
		ClientPhone:    "(11) 98765-4321",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateBooking(repo, testDispatcher(t), testTZ)

	repo.On("GetService", mock.Anything, uint(1)).Return(activeService(), nil)
	repo.On("GetProfessional", mock.Anything, uint(2)).Return(activeProfessional(), nil)
	repo.On("CreateWithConflictCheck", mock.Anything, mock.Anything, 30).Return(nil)

	ap, err := uc.Execute(context.Background(), validInput())

	assert.NoError(t, err)
	assert.Equal(t, "scheduled", ap.Status)
	assert.Equal(t, "09:00", ap.AppointmentTime)
	assert.Equal(t, "Maria Silva", ap.ClientName)
	assert.Equal(t, "11987654321", ap.ClientPhone)
	repo.AssertExpectations(t)
}

func TestCreateBookingNormalizesClock(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateBooking(repo, testDispatcher(t), testTZ)

	repo.On("GetService", mock.Anything, uint(1)).Return(activeService(), nil)
	repo.On("GetProfessional", mock.Anything, uint(2)).Return(activeProfessional(), nil)
	repo.On("CreateWithConflictCheck", mock.Anything, mock.Anything, 30).Return(nil)

	in := validInput()
	in.Time = "09:00:00"

	ap, err := uc.Execute(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, "09:00", ap.AppointmentTime)
}

func TestCreateBookingConflict(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateBooking(repo, testDispatcher(t), testTZ)

	repo.On("GetService", mock.Anything, uint(1)).Return(activeService(), nil)
	repo.On("GetProfessional", mock.Anything, uint(2)).Return(activeProfessional(), nil)
	repo.On("CreateWithConflictCheck", mock.Anything, mock.Anything, 30).
		Return(domain.ConflictError{Window: "09:00-09:30"})

	_, err := uc.Execute(context.Background(), validInput())

	assert.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestCreateBookingInvalidDate(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateBooking(repo, testDispatcher(t), testTZ)

	in := validInput()
	in.Date = "07/09/2026"

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	repo.AssertNotCalled(t, "CreateWithConflictCheck")
}

func TestCreateBookingInvalidTime(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateBooking(repo, testDispatcher(t), testTZ)

	in := validInput()
	in.Time = "25:00"

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}

func TestCreateBookingInactiveService(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateBooking(repo, testDispatcher(t), testTZ)

	svc := activeService()
	svc.Active = false
	repo.On("GetService", mock.Anything, uint(1)).Return(svc, nil)

	_, err := uc.Execute(context.Background(), validInput())

	assert.True(t, httperr.IsBusiness(err, "service_inactive"))
	repo.AssertNotCalled(t, "CreateWithConflictCheck")
}

func TestCreateBookingInactiveProfessional(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateBooking(repo, testDispatcher(t), testTZ)

	pro := activeProfessional()
	pro.Active = false
	repo.On("GetService", mock.Anything, uint(1)).Return(activeService(), nil)
	repo.On("GetProfessional", mock.Anything, uint(2)).Return(pro, nil)

	_, err := uc.Execute(context.Background(), validInput())

	assert.True(t, httperr.IsBusiness(err, "professional_inactive"))
}

func TestCreateBookingDefaultDuration(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateBooking(repo, testDispatcher(t), testTZ)

	svc := activeService()
	svc.DurationMinutes = 0
	repo.On("GetService", mock.Anything, uint(1)).Return(svc, nil)
	repo.On("GetProfessional", mock.Anything, uint(2)).Return(activeProfessional(), nil)
	repo.On("CreateWithConflictCheck", mock.Anything, mock.Anything, 30).Return(nil)

	_, err := uc.Execute(context.Background(), validInput())

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
