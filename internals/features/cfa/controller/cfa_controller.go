package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academiafc_backend/internals/features/cfa/dto"
	"academiafc_backend/internals/features/cfa/service"
	helper "academiafc_backend/internals/helpers"
)

type CfaController struct {
	DB *gorm.DB
}

func NewCfaController(db *gorm.DB) *CfaController {
	return &CfaController{DB: db}
}

// db amarra a conexão ao contexto da requisição (timeout de 5s do bootstrap).
func (ctrl *CfaController) db(c *fiber.Ctx) *gorm.DB {
	return ctrl.DB.WithContext(c.UserContext())
}

func (ctrl *CfaController) parseBody(c *fiber.Ctx) (*dto.CfaInfoRequest, uuid.UUID, error) {
	alunoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID de aluno inválido")
	}

	var body dto.CfaInfoRequest
	if err := c.BodyParser(&body); err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return &body, alunoID, nil
}

// =========================
// Cadastro do perfil CFA
// =========================
// POST /alunos/:id/cfa
func (ctrl *CfaController) CreateCfaInfo(c *fiber.Ctx) error {
	body, alunoID, err := ctrl.parseBody(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	info, err := body.ToModel(alunoID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Campos extras inválidos")
	}

	if err := service.CreateCfaInfo(ctrl.db(c), &info); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Informações adicionais cadastradas com sucesso!", dto.ToCfaInfoDTO(info))
}

// =========================
// Atualização do perfil CFA
// =========================
// PUT /alunos/:id/cfa
func (ctrl *CfaController) UpdateCfaInfo(c *fiber.Ctx) error {
	body, alunoID, err := ctrl.parseBody(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	info, err := body.ToModel(alunoID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Campos extras inválidos")
	}

	if err := service.UpdateCfaInfo(ctrl.db(c), &info); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Informações adicionais atualizadas com sucesso", dto.ToCfaInfoDTO(info))
}

// =========================
// Consulta do perfil CFA
// =========================
// GET /alunos/:id/cfa
func (ctrl *CfaController) GetCfaInfo(c *fiber.Ctx) error {
	alunoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de aluno inválido")
	}

	info, err := service.FindCfaInfo(ctrl.db(c), alunoID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToCfaInfoDTO(*info))
}
