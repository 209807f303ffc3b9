package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError converte o erro devolvido por um service/Transaction
// (normalmente *fiber.Error) em resposta JSON consistente via JsonError.
// Se não for *fiber.Error, cai em 500 genérico — o detalhe fica só no log.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Erro interno")
}
