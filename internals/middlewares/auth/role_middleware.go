package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"academiafc_backend/internals/constants"
	helper "academiafc_backend/internals/helpers"
)

// RequireOperation consulta a tabela de permissão declarativa.
// Ausência de role em Locals = requisição não autenticada (401);
// role presente mas não autorizada = 403.
func RequireOperation(op constants.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocUserRole).(string)
		if !ok || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Informação de papel ausente")
		}

		if !constants.IsAllowed(op, role) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorGeneric(string(op)))
		}
		return c.Next()
	}
}

// RequireOwnAluno restringe responsável ao próprio aluno vinculado.
// Admin passa direto. paramName é o nome do parâmetro de rota com o id.
func RequireOwnAluno(paramName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocUserRole).(string)
		if role != constants.RoleResponsavel {
			return c.Next()
		}

		// compara como uuid.UUID: a forma textual do id na URL pode variar
		// (maiúsculas etc.) sem deixar de ser o mesmo aluno
		linked, _ := c.Locals(LocAlunoID).(string)
		linkedID, err := uuid.Parse(linked)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Acesso restrito ao aluno vinculado")
		}
		paramID, err := uuid.Parse(c.Params(paramName))
		if err != nil || paramID != linkedID {
			return helper.JsonError(c, fiber.StatusForbidden, "Acesso restrito ao aluno vinculado")
		}
		return c.Next()
	}
}
