package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultStep é o passo da grade de horários em minutos.
const DefaultStep = 15

// DefaultServiceDuration é a duração assumida quando o serviço do
// agendamento não pôde ser carregado (registro removido). Aplicada em
// um único ponto: OccupiedIntervals.
const DefaultServiceDuration = 30

// ToMinutes converte "HH:MM" (ou "HH:MM:SS") em minutos desde a
// meia-noite. Não valida o formato; entrada corrompida deve ser barrada
// na borda (internal/validators).
func ToMinutes(clock string) int {
	if len(clock) > 5 {
		clock = clock[:5]
	}
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0
	}
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}

// FormatMinutes é o inverso de ToMinutes, com zero à esquerda.
func FormatMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// GenerateSlots gera a sequência de candidatos entre abertura e
// fechamento. Um candidato só entra se o serviço inteiro couber antes
// do fechamento (pos+duração <= fechamento); terminar exatamente no
// fechamento é permitido.
func GenerateSlots(open, close string, durationMin, stepMin int) []string {
	slots := []string{}
	end := ToMinutes(close)
	for cur := ToMinutes(open); cur+durationMin <= end; cur += stepMin {
		slots = append(slots, FormatMinutes(cur))
	}
	return slots
}
