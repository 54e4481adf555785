package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// IsToday compara a data consultada com o relógio da barbearia; decide
// se o corte de horário já passado se aplica.
func IsToday(date time.Time, tz string) bool {
	now := NowIn(tz)
	return date.Year() == now.Year() && date.Month() == now.Month() && date.Day() == now.Day()
}
