package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barberflow-web/internal/timezone"
)

// Now existe para os testes controlarem o relógio das regras que
// dependem da data corrente (validade do cartão, ano de fundação).
var Now = timezone.Now

var (
	phonePattern  = regexp.MustCompile(`^\([0-9]{2}\) [0-9]{4,5}-[0-9]{4}$`)
	cardPattern   = regexp.MustCompile(`^(\d{4}\s){3}\d{4}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])\/([0-9]{2})$`)
	cepPattern    = regexp.MustCompile(`^\d{5}-\d{3}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Nome do campo na saída = name do input HTML (tag form).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("br_phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("card_number", func(fl validator.FieldLevel) bool {
		return cardPattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("card_expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("expiry_future", expiryFuture)

	v.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
		return cepPattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("founding_year", foundingYear)

	return v
}

// expiryFuture considera o cartão válido quando MM/20AA é estritamente
// posterior à data atual. Formato inválido passa aqui: a tag
// card_expiry já reporta o erro de formato.
func expiryFuture(fl validator.FieldLevel) bool {
	m := expiryPattern.FindStringSubmatch(fl.Field().String())
	if m == nil {
		return true
	}

	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])

	expiry := time.Date(2000+year, time.Month(month), 1, 0, 0, 0, 0, timezone.Location())
	return expiry.After(Now())
}

func foundingYear(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if len(raw) != 4 {
		return false
	}

	year, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}
	return year >= 1900 && year <= Now().Year()
}

// Struct valida o form inteiro e devolve field → mensagem. Mapa vazio
// significa form apto para submissão. A primeira regra violada de cada
// campo prevalece.
func Struct(form any) map[string]string {
	errs := map[string]string{}

	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_form"] = genericMessage
		return errs
	}

	for _, fe := range invalid {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		errs[fe.Field()] = messageFor(fe)
	}
	return errs
}
