package schedule

import (
	"time"

	"github.com/navalhaclub/booking-api/internal/models"
)

// BlockAppliesOn decide se um bloqueio vale para a data: específico na
// mesma data de calendário, ou recorrente no mesmo dia da semana.
// Bloqueio inativo nunca se aplica.
func BlockAppliesOn(b *models.BlockedTime, date time.Time) bool {
	if !b.IsActive {
		return false
	}

	switch b.BlockType {
	case models.BlockTypeSpecific:
		return b.SpecificDate != nil && sameDate(*b.SpecificDate, date)
	case models.BlockTypeRecurring:
		return b.DayOfWeek != nil && *b.DayOfWeek == int(date.Weekday())
	}

	return false
}

// BlockWindows resolve os bloqueios aplicáveis à data em janelas
// [início, fim). Janelas sobrepostas não são fundidas; quem consome só
// precisa da união via Overlaps.
func BlockWindows(blocks []models.BlockedTime, date time.Time) []Window {
	windows := make([]Window, 0, len(blocks))
	for i := range blocks {
		b := &blocks[i]
		if !BlockAppliesOn(b, date) {
			continue
		}
		windows = append(windows, Window{
			StartMinutes: ToMinutes(b.StartTime),
			EndMinutes:   ToMinutes(b.EndTime),
			Reason:       b.Reason,
		})
	}
	return windows
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
