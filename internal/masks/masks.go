package masks

import "strings"

// Máscaras de input: cada função recebe o valor cru digitado e devolve
// a string formatada. Nunca retornam erro — input inválido vira string
// vazia ou um prefixo parcialmente formatado.

func Digits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhoneNumber formata para (DD) DDDDD-DDDD. Números fixos (10 dígitos)
// ficam com a parte local de 4 dígitos; excedente é descartado.
func PhoneNumber(value string) string {
	digits := Digits(value)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	if len(digits) <= 2 {
		return digits
	}

	area := digits[:2]
	local := digits[2:]

	switch {
	case len(local) <= 4:
		return "(" + area + ") " + local
	case len(local) <= 8:
		return "(" + area + ") " + local[:len(local)-4] + "-" + local[len(local)-4:]
	default:
		return "(" + area + ") " + local[:5] + "-" + local[5:]
	}
}

// CardNumber agrupa de 4 em 4 dígitos separados por espaço, até 16.
func CardNumber(value string) string {
	digits := Digits(value)
	if len(digits) > 16 {
		digits = digits[:16]
	}

	var groups []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}
	return strings.Join(groups, " ")
}

// ExpiryDate formata MM/AA. A barra só aparece a partir do terceiro
// dígito; a validade da data em si é responsabilidade do schema.
func ExpiryDate(value string) string {
	digits := Digits(value)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// CEP formata DDDDD-DDD, até 8 dígitos.
func CEP(value string) string {
	digits := Digits(value)
	if len(digits) > 8 {
		digits = digits[:8]
	}
	if len(digits) <= 5 {
		return digits
	}
	return digits[:5] + "-" + digits[5:]
}
