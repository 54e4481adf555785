package validators

// IsClock valida "HH:MM" de 5 caracteres — o formato que o núcleo de
// horários assume e não revalida. Toda entrada externa passa por aqui
// antes de chegar na aritmética de minutos.
func IsClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return hour < 24 && minute < 60
}

// NormalizeClock reduz "HH:MM:SS" à precisão de 5 caracteres usada em
// todo o sistema.
func NormalizeClock(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
