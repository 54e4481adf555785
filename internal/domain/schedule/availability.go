package schedule

import "github.com/navalhaclub/booking-api/internal/models"

// ===============================
// Tipos
// ===============================

// DaySchedule é a linha efetiva do horário de funcionamento para um dia.
type DaySchedule struct {
	Open      bool
	OpenTime  string
	CloseTime string
}

// Occupied é o intervalo ocupado por um agendamento não cancelado.
type Occupied struct {
	StartMinutes    int
	DurationMinutes int
}

func (o Occupied) End() int { return o.StartMinutes + o.DurationMinutes }

// Window é uma janela bloqueada já resolvida para a data consultada.
type Window struct {
	StartMinutes int
	EndMinutes   int
	Reason       string
}

// DefaultWeek devolve o template padrão usado quando não há horário
// configurado. É injetado no resolver pelo chamador; dado armazenado
// tem precedência sobre este fallback.
func DefaultWeek() [7]DaySchedule {
	return [7]DaySchedule{
		{Open: false, OpenTime: "09:00", CloseTime: "18:00"}, // domingo
		{Open: true, OpenTime: "08:00", CloseTime: "19:00"},
		{Open: true, OpenTime: "08:00", CloseTime: "19:00"},
		{Open: true, OpenTime: "08:00", CloseTime: "19:00"},
		{Open: true, OpenTime: "08:00", CloseTime: "19:00"},
		{Open: true, OpenTime: "08:00", CloseTime: "19:00"},
		{Open: true, OpenTime: "08:00", CloseTime: "17:00"}, // sábado
	}
}

// OccupiedIntervals converte agendamentos carregados em intervalos
// ocupados. A duração é relida do serviço associado no momento da
// consulta; se o join veio vazio, vale DefaultServiceDuration.
func OccupiedIntervals(appts []models.Appointment) []Occupied {
	out := make([]Occupied, 0, len(appts))
	for i := range appts {
		d := appts[i].Service.DurationMinutes
		if d <= 0 {
			d = DefaultServiceDuration
		}
		out = append(out, Occupied{
			StartMinutes:    ToMinutes(appts[i].AppointmentTime),
			DurationMinutes: d,
		})
	}
	return out
}

// ===============================
// Resolver
// ===============================

// AvailableSlots combina horário do dia, agendamentos e bloqueios na
// lista final de horários livres, em ordem crescente.
//
// nowMinutes é o relógio atual em minutos quando a data consultada é
// hoje (corta horário que não seja estritamente futuro); negativo para
// qualquer outra data.
func AvailableSlots(
	day DaySchedule,
	durationMin int,
	appts []Occupied,
	blocks []Window,
	nowMinutes int,
) []string {

	if !day.Open {
		return []string{}
	}

	candidates := GenerateSlots(day.OpenTime, day.CloseTime, durationMin, DefaultStep)
	out := make([]string, 0, len(candidates))

	for _, label := range candidates {
		start := ToMinutes(label)
		end := start + durationMin

		if nowMinutes >= 0 && start <= nowMinutes {
			continue
		}

		taken := false
		for _, ap := range appts {
			if Overlaps(start, end, ap.StartMinutes, ap.End()) {
				taken = true
				break
			}
		}
		if !taken {
			for _, bl := range blocks {
				if Overlaps(start, end, bl.StartMinutes, bl.EndMinutes) {
					taken = true
					break
				}
			}
		}

		if !taken {
			out = append(out, label)
		}
	}

	return out
}
