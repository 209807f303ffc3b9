// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"academiafc_backend/internals/configs"
	tokenService "academiafc_backend/internals/features/users/auth/service"
	helper "academiafc_backend/internals/helpers"
)

// Chaves de Locals preenchidas após verificação do token.
const (
	LocUserRole = "userRole"
	LocUsername = "username"
	LocAlunoID  = "aluno_id"
)

// AuthMiddleware verifica o bearer token e guarda os claims em Locals.
// Expirado, malformado e assinatura inválida são distinguidos só no log;
// para o cliente todos respondem 401.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token não informado")
		}

		if configs.JWTSecret == "" {
			log.Println("[ERROR] JWT_SECRET vazio")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno")
		}

		claims, err := tokenService.VerifyToken(configs.JWTSecret, raw)
		if err != nil {
			switch {
			case errors.Is(err, tokenService.ErrTokenExpired):
				log.Printf("[WARN] auth: token expirado (%s %s)", c.Method(), c.Path())
			case errors.Is(err, tokenService.ErrTokenBadSignature):
				log.Printf("[WARN] auth: assinatura inválida (%s %s)", c.Method(), c.Path())
			default:
				log.Printf("[WARN] auth: token malformado (%s %s)", c.Method(), c.Path())
			}
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token inválido ou expirado")
		}

		c.Locals(LocUserRole, claims.Role)
		c.Locals(LocUsername, claims.Username)
		if claims.AlunoID != nil {
			c.Locals(LocAlunoID, claims.AlunoID.String())
		}
		return c.Next()
	}
}
