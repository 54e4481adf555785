package validators

import "strings"

// CleanPhone remove tudo que não for dígito; telefone é a chave de
// identificação do cliente.
func CleanPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsPhone(phone string) bool {
	n := len(CleanPhone(phone))
	return n >= 8 && n <= 15
}
