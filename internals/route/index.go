// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AlunoRoute "academiafc_backend/internals/features/alunos/route"
	CfaRoute "academiafc_backend/internals/features/cfa/route"
	PagamentoRoute "academiafc_backend/internals/features/pagamentos/route"
	AuthRoute "academiafc_backend/internals/features/users/auth/route"
	authMw "academiafc_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH (público) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	AuthRoute.AuthRoutes(app, db)

	// ===================== API (token obrigatório) =====================
	// Toda rota de domínio exige bearer token; a autorização por papel é
	// aplicada rota a rota contra a tabela de permissão.
	log.Println("[INFO] Setting up API group...")
	api := app.Group("/", authMw.AuthMiddleware())

	log.Println("[INFO] Setting up AlunoRoutes...")
	AlunoRoute.AlunoRoutes(api, db)

	log.Println("[INFO] Setting up PagamentoRoutes...")
	PagamentoRoute.PagamentoRoutes(api, db)

	log.Println("[INFO] Setting up CfaRoutes...")
	CfaRoute.CfaRoutes(api, db)
}
