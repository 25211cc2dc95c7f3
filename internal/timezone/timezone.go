package timezone

import "time"

// O produto atende barbearias brasileiras; as regras sensíveis a data
// (validade de cartão, ano de fundação) usam o horário de Brasília.
const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}
