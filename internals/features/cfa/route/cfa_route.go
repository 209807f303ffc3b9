package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academiafc_backend/internals/constants"
	"academiafc_backend/internals/features/cfa/controller"
	authMw "academiafc_backend/internals/middlewares/auth"
)

func CfaRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCfaController(db)

	guard := authMw.RequireOperation(constants.OpCfaManage)

	r.Post("/alunos/:id/cfa", guard, ctrl.CreateCfaInfo)
	r.Put("/alunos/:id/cfa", guard, ctrl.UpdateCfaInfo)
	r.Get("/alunos/:id/cfa", guard, ctrl.GetCfaInfo)
}
