package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academiafc_backend/internals/constants"
	"academiafc_backend/internals/features/pagamentos/controller"
	authMw "academiafc_backend/internals/middlewares/auth"
)

func PagamentoRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPagamentoController(db)

	r.Post("/pagamentos",
		authMw.RequireOperation(constants.OpPagamentoCreate),
		ctrl.CreatePagamento)

	r.Get("/alunos/:id/pagamentos",
		authMw.RequireOperation(constants.OpPagamentoRead),
		authMw.RequireOwnAluno("id"),
		ctrl.GetPagamentosByAluno)

	r.Get("/alunos/:id/pagamentos/pendentes",
		authMw.RequireOperation(constants.OpPagamentoRead),
		authMw.RequireOwnAluno("id"),
		ctrl.GetPagamentosPendentes)
}
