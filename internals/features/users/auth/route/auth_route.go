package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academiafc_backend/internals/constants"
	"academiafc_backend/internals/features/users/auth/controller"
	middlewares "academiafc_backend/internals/middlewares"
	authMw "academiafc_backend/internals/middlewares/auth"
)

// AuthRoutes registra login (público, com limiter próprio) e o reset de
// senha (token de admin obrigatório — o sistema antigo deixava aberto).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	app.Post("/login",
		middlewares.LoginRateLimiter(),
		ctrl.Login)

	app.Post("/usuarios/set-password",
		authMw.AuthMiddleware(),
		authMw.RequireOperation(constants.OpUsuarioSetSenha),
		ctrl.SetPassword)
}
