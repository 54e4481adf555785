package schedule

// Overlaps reporta se dois intervalos meio-abertos [aStart,aEnd) e
// [bStart,bEnd), em minutos, se intersectam. Comparação estrita nos
// limites: um horário que começa exatamente quando o outro termina não
// conflita, então agendamentos encostados são válidos.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
