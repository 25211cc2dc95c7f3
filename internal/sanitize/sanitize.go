package sanitize

import (
	"encoding/json"
	"strings"
)

// Marker substitui o valor de campos sensíveis em logs.
const Marker = "***REMOVED***"

var sensitiveFields = map[string]bool{
	"password":  true,
	"email":     true,
	"code":      true,
	"token":     true,
	"cellphone": true,
	"telefone":  true,
	"cpf":       true,
	"cnpj":      true,
}

// Data devolve uma cópia de v com valores de chaves sensíveis trocados
// pelo Marker, descendo recursivamente em objetos e arrays. Valores
// escalares voltam inalterados.
func Data(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for key, val := range t {
			if sensitiveFields[strings.ToLower(key)] {
				out[key] = Marker
				continue
			}
			out[key] = Data(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Data(val)
		}
		return out
	default:
		return v
	}
}

// JSON decodifica um documento JSON e aplica Data. Corpo que não é
// JSON válido volta como string crua (nunca falha).
func JSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return Data(v)
}
