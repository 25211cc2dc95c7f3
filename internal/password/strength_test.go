package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrength(t *testing.T) {
	tests := []struct {
		pass string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"abcdefgh", 1},
		{"Abcdefgh", 2},
		{"Abcdefg1", 3},
		{"Senha123!", 4},
		{"Ab1!", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Strength(tt.pass), "password %q", tt.pass)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Muito Fraca", Label(0))
	assert.Equal(t, "Muito Fraca", Label(1))
	assert.Equal(t, "Média", Label(2))
	assert.Equal(t, "Forte", Label(3))
	assert.Equal(t, "Muito Forte", Label(4))
}
