package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academiafc_backend/internals/constants"
	"academiafc_backend/internals/features/alunos/controller"
	authMw "academiafc_backend/internals/middlewares/auth"
)

// AlunoRoutes registra as rotas de aluno. O router recebido já passou
// pelo AuthMiddleware; aqui entram só os guards de papel/escopo.
func AlunoRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAlunoController(db)

	r.Get("/alunos",
		authMw.RequireOperation(constants.OpAlunoList),
		ctrl.GetAllAlunos)

	r.Post("/alunos",
		authMw.RequireOperation(constants.OpAlunoCreate),
		ctrl.CreateAluno)

	r.Get("/alunos/:id",
		authMw.RequireOperation(constants.OpAlunoRead),
		authMw.RequireOwnAluno("id"),
		ctrl.GetAlunoByID)

	r.Put("/alunos/:id",
		authMw.RequireOperation(constants.OpAlunoUpdate),
		ctrl.UpdateAluno)

	r.Delete("/alunos/:id",
		authMw.RequireOperation(constants.OpAlunoDelete),
		ctrl.DeleteAluno)

	r.Put("/alunos/:id/foto",
		authMw.RequireOperation(constants.OpAlunoUpdate),
		ctrl.UploadFoto)

	r.Get("/alunos/:id/foto",
		authMw.RequireOperation(constants.OpAlunoRead),
		authMw.RequireOwnAluno("id"),
		ctrl.GetFoto)
}
