package appointment

import (
	"time"

	"github.com/navalhaclub/booking-api/internal/models"
)

type AvailabilityInput struct {
	Date           time.Time
	ServiceID      uint
	ProfessionalID *uint
}

// AvailabilityResult carrega, além dos horários livres, os dados crus
// que a interface pública expõe (template semanal e bloqueios). Sem
// professional_id o filtro fica por conta do chamador.
type AvailabilityResult struct {
	Slots         []string
	BusinessHours []models.BusinessHours
	Appointments  []models.Appointment
	BlockedTimes  []models.BlockedTime
}
