package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/models"
)

func scheduledAppointment() *models.Appointment {
	return &models.Appointment{ID: 10, Status: "scheduled", AppointmentTime: "09:00"}
}

func TestCancelAppointment(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCancelAppointment(repo, testDispatcher(t), testTZ)

	repo.On("GetAppointment", mock.Anything, uint(10)).Return(scheduledAppointment(), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	ap, err := uc.Execute(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)
	assert.NotNil(t, ap.CancelledAt)
	repo.AssertExpectations(t)
}

func TestCancelAlreadyCancelled(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCancelAppointment(repo, testDispatcher(t), testTZ)

	ap := scheduledAppointment()
	ap.Status = "cancelled"
	repo.On("GetAppointment", mock.Anything, uint(10)).Return(ap, nil)

	_, err := uc.Execute(context.Background(), 1, 10)

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	repo.AssertNotCalled(t, "UpdateAppointment")
}

func TestCompleteAppointment(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCompleteAppointment(repo, testDispatcher(t), testTZ)

	repo.On("GetAppointment", mock.Anything, uint(10)).Return(scheduledAppointment(), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	ap, err := uc.Execute(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, "completed", ap.Status)
	assert.NotNil(t, ap.CompletedAt)
}

func TestCompleteCancelledAppointment(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCompleteAppointment(repo, testDispatcher(t), testTZ)

	ap := scheduledAppointment()
	ap.Status = "cancelled"
	repo.On("GetAppointment", mock.Anything, uint(10)).Return(ap, nil)

	_, err := uc.Execute(context.Background(), 1, 10)

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
