package schedule

// Conflict descreve a janela existente que colide com o horário
// proposto.
type Conflict struct {
	StartMinutes int
	EndMinutes   int
}

// Window devolve a janela em "HH:MM-HH:MM", para mensagem e auditoria.
func (c Conflict) Window() string {
	return FormatMinutes(c.StartMinutes) + "-" + FormatMinutes(c.EndMinutes)
}

// FindConflict aplica Overlaps da proposta contra cada agendamento não
// cancelado e devolve a primeira colisão, ou nil quando o horário está
// livre. Roda na escrita, sempre sobre dados recém-lidos: nunca confia
// na disponibilidade que o cliente viu antes de submeter.
func FindConflict(startMin, durationMin int, existing []Occupied) *Conflict {
	end := startMin + durationMin
	for _, ap := range existing {
		if Overlaps(startMin, end, ap.StartMinutes, ap.End()) {
			return &Conflict{StartMinutes: ap.StartMinutes, EndMinutes: ap.End()}
		}
	}
	return nil
}
