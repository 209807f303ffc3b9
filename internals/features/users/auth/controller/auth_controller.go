package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academiafc_backend/internals/configs"
	"academiafc_backend/internals/constants"
	"academiafc_backend/internals/features/users/auth/dto"
	"academiafc_backend/internals/features/users/auth/model"
	"academiafc_backend/internals/features/users/auth/service"
	helper "academiafc_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// db amarra a conexão ao contexto da requisição (timeout de 5s do bootstrap).
func (ctrl *AuthController) db(c *fiber.Ctx) *gorm.DB {
	return ctrl.DB.WithContext(c.UserContext())
}

// =========================
// Login
// =========================
// POST /login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UsuarioModel
	if err := ctrl.db(c).Where("usuario_username = ?", body.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
		}
		log.Printf("[ERROR] login: busca de usuário falhou: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno")
	}

	// papel gravado no banco precisa ser conhecido antes de emitir token
	if !constants.IsKnownRole(user.UsuarioRole) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Papel de usuário desconhecido")
	}
	if user.UsuarioRole == constants.RoleResponsavel && user.UsuarioAlunoID == nil {
		log.Printf("[ERROR] login: responsável %s sem aluno vinculado", user.UsuarioUsername)
		return helper.JsonError(c, fiber.StatusBadRequest, "Registro de login inconsistente")
	}

	if err := service.CheckPasswordHash(user.UsuarioSenha, body.Senha); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	token, err := service.IssueToken(configs.JWTSecret, user.UsuarioUsername, user.UsuarioRole, user.UsuarioAlunoID)
	if err != nil {
		log.Printf("[ERROR] login: emissão de token falhou: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno")
	}

	return helper.JsonOK(c, "Login realizado com sucesso", dto.LoginResponse{Token: token})
}

// =========================
// Reset de senha (admin)
// =========================
// POST /usuarios/set-password
func (ctrl *AuthController) SetPassword(c *fiber.Ctx) error {
	var body dto.SetPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UsuarioModel
	if err := ctrl.db(c).Where("usuario_username = ?", body.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não autorizado")
		}
		log.Printf("[ERROR] set-password: busca de usuário falhou: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno")
	}

	// só registros de admin podem ter a senha trocada por aqui
	if user.UsuarioRole != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não autorizado")
	}

	hash, err := service.HashPassword(body.NovaSenha)
	if err != nil {
		log.Printf("[ERROR] set-password: hash falhou: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno")
	}

	if err := ctrl.db(c).Model(&model.UsuarioModel{}).
		Where("usuario_id = ?", user.UsuarioID).
		Update("usuario_senha", hash).Error; err != nil {
		log.Printf("[ERROR] set-password: update falhou: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno")
	}

	return helper.JsonUpdated(c, "Senha atualizada com sucesso", nil)
}
