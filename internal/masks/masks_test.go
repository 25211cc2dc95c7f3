package masks

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"one digit", "1", "1"},
		{"area only", "11", "11"},
		{"partial local", "119", "(11) 9"},
		{"four local digits", "119123", "(11) 9123"},
		{"landline", "1112345678", "(11) 1234-5678"},
		{"mobile", "11912345678", "(11) 91234-5678"},
		{"excess digits truncated", "119123456789999", "(11) 91234-5678"},
		{"already formatted", "(11) 91234-5678", "(11) 91234-5678"},
		{"letters stripped", "11a9b1234c5678", "(11) 91234-5678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhoneNumber(tt.in))
		})
	}
}

func TestPhoneNumberCompleteMatchesPattern(t *testing.T) {
	re := regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)

	for _, in := range []string{"1112345678", "11912345678"} {
		out := PhoneNumber(in)
		assert.Regexp(t, re, out, "input %q", in)
	}
}

func TestPhoneNumberIdempotent(t *testing.T) {
	inputs := []string{"", "1", "11", "119", "11912", "1191234", "1112345678", "11912345678", "(11) 91234-5678"}
	for _, in := range inputs {
		once := PhoneNumber(in)
		assert.Equal(t, once, PhoneNumber(once), "input %q", in)
	}
}

func TestCardNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"4", "4"},
		{"41111", "4111 1"},
		{"4111111111111111", "4111 1111 1111 1111"},
		{"4111 1111 1111 1111", "4111 1111 1111 1111"},
		{"41111111111111119999", "4111 1111 1111 1111"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CardNumber(tt.in), "input %q", tt.in)
	}
}

func TestCardNumberGroups(t *testing.T) {
	out := CardNumber("1234567890123456")

	for _, group := range strings.Split(out, " ") {
		assert.Len(t, group, 4)
	}
	assert.LessOrEqual(t, len(strings.ReplaceAll(out, " ", "")), 16)
}

func TestExpiryDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"13", "13"},
		{"122", "12/2"},
		{"1225", "12/25"},
		{"12256", "12/25"},
		{"12/25", "12/25"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpiryDate(tt.in), "input %q", tt.in)
	}
}

func TestCEP(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"01310", "01310"},
		{"013101", "01310-1"},
		{"01310100", "01310-100"},
		{"01310-100", "01310-100"},
		{"013101009999", "01310-100"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CEP(tt.in), "input %q", tt.in)
	}
}
