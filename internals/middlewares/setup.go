package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	loggerMw "academiafc_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra os middlewares globais na ordem certa.
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Registrando middlewares globais...")

	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
