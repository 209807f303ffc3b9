// file: internals/helpers/validator.go
package helper

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator devolve o singleton do validator.v10 já com as tags customizadas
// do domínio registradas: cpf, rg, data_br e casas2.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		_ = validate.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
			return ValidateCPF(fl.Field().String())
		})

		_ = validate.RegisterValidation("rg", func(fl validator.FieldLevel) bool {
			return ValidateRG(fl.Field().String())
		})

		// data no formato fixo DD-MM-YYYY
		_ = validate.RegisterValidation("data_br", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("02-01-2006", fl.Field().String())
			return err == nil
		})

		// numérico com no máximo 2 casas decimais
		_ = validate.RegisterValidation("casas2", func(fl validator.FieldLevel) bool {
			v := fl.Field().Float()
			return math.Abs(v*100-math.Round(v*100)) < 1e-9
		})
	})
	return validate
}

// mensagens por tag — a primeira violação vira a mensagem da resposta
var tagMessages = map[string]string{
	"required": "campo obrigatório",
	"email":    "email inválido",
	"cpf":      "dígito verificador do CPF inválido",
	"rg":       "dígito verificador do RG inválido",
	"data_br":  "data inválida (use DD-MM-YYYY)",
	"casas2":   "use no máximo 2 casas decimais",
	"gt":       "deve ser maior que zero",
	"min":      "valor abaixo do mínimo",
	"max":      "valor acima do máximo",
	"oneof":    "valor fora da lista permitida",
}

// FirstValidationMessage extrai a primeira falha (fail-fast) como mensagem
// única no formato "campo: motivo". Erros que não são de validação caem em
// mensagem genérica de payload.
func FirstValidationMessage(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return "payload inválido"
	}
	fe := ve[0]
	msg, ok := tagMessages[fe.Tag()]
	if !ok {
		msg = "valor inválido"
	}
	return fmt.Sprintf("%s: %s", fe.Field(), msg)
}

// ValidateStruct roda o validator e devolve a primeira falha como erro simples.
func ValidateStruct(s any) error {
	if err := Validator().Struct(s); err != nil {
		return fmt.Errorf("%s", FirstValidationMessage(err))
	}
	return nil
}
