package handlers

import (
	"time"

	"github.com/navalhaclub/booking-api/internal/timezone"
)

func parseDate(tz, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location(tz))
}

// parseDateRange interpreta from/to (YYYY-MM-DD, inclusivos) e devolve
// o intervalo meio-aberto [from, to+1d) usado nas listagens.
func parseDateRange(tz, fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := parseDate(tz, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	to, err := parseDate(tz, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return from, to.AddDate(0, 0, 1), nil
}
