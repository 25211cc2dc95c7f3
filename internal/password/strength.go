package password

import "unicode"

// Níveis do medidor de força exibido no cadastro.
const (
	LevelEmpty      = 0
	LevelVeryWeak   = 1
	LevelMedium     = 2
	LevelStrong     = 3
	LevelVeryStrong = 4
)

// Strength pontua a senha de 0 a 4: +1 por comprimento ≥ 8, maiúscula e
// minúscula juntas, dígito e caractere especial.
func Strength(pass string) int {
	if pass == "" {
		return LevelEmpty
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range pass {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	strength := 0
	if len(pass) >= 8 {
		strength++
	}
	if hasLower && hasUpper {
		strength++
	}
	if hasDigit {
		strength++
	}
	if hasSpecial {
		strength++
	}
	return strength
}

// Label é o texto mostrado ao lado do medidor.
func Label(strength int) string {
	switch {
	case strength <= LevelVeryWeak:
		return "Muito Fraca"
	case strength == LevelMedium:
		return "Média"
	case strength == LevelStrong:
		return "Forte"
	default:
		return "Muito Forte"
	}
}
