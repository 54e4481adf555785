package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/navalhaclub/booking-api/internal/models"
)

func TestBuildReport(t *testing.T) {
	repo := new(MockRepository)
	uc := NewBuildReport(repo)

	corte := models.Service{ID: 1, Name: "Corte", Price: 50}
	barba := models.Service{ID: 2, Name: "Barba", Price: 30}

	repo.On("ListAppointmentsForPeriod", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Appointment{
			{ServiceID: 1, Service: corte, Status: "completed"},
			{ServiceID: 1, Service: corte, Status: "completed"},
			{ServiceID: 1, Service: corte, Status: "cancelled"},
			{ServiceID: 2, Service: barba, Status: "completed"},
			{ServiceID: 2, Service: barba, Status: "scheduled"},
		}, nil)

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	summary, err := uc.Execute(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Equal(t, "2026-09-01", summary.From)
	assert.Equal(t, "2026-09-30", summary.To)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 1, summary.Scheduled)
	assert.Equal(t, 3, summary.Completed)
	assert.Equal(t, 1, summary.Cancelled)

	// Receita só de concluídos: 2x corte + 1x barba.
	assert.Equal(t, 130.0, summary.Revenue)

	assert.Len(t, summary.Services, 2)
	assert.Equal(t, "Corte", summary.Services[0].Name)
	assert.Equal(t, 3, summary.Services[0].Count)
	assert.Equal(t, 100.0, summary.Services[0].Revenue)
	assert.Equal(t, "Barba", summary.Services[1].Name)
	assert.Equal(t, 2, summary.Services[1].Count)
	assert.Equal(t, 30.0, summary.Services[1].Revenue)
}

func TestBuildReportEmptyPeriod(t *testing.T) {
	repo := new(MockRepository)
	uc := NewBuildReport(repo)

	repo.On("ListAppointmentsForPeriod", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Appointment{}, nil)

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	summary, err := uc.Execute(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0.0, summary.Revenue)
	assert.Empty(t, summary.Services)
}
