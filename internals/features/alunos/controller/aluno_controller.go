package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academiafc_backend/internals/constants"
	"academiafc_backend/internals/features/alunos/dto"
	"academiafc_backend/internals/features/alunos/model"
	"academiafc_backend/internals/features/alunos/service"
	helper "academiafc_backend/internals/helpers"
)

type AlunoController struct {
	DB *gorm.DB
}

func NewAlunoController(db *gorm.DB) *AlunoController {
	return &AlunoController{DB: db}
}

// db amarra a conexão ao contexto da requisição; o timeout de 5s definido
// no bootstrap passa a valer também dentro das queries.
func (ctrl *AlunoController) db(c *fiber.Ctx) *gorm.DB {
	return ctrl.DB.WithContext(c.UserContext())
}

func parseAlunoID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID de aluno inválido")
	}
	return id, nil
}

// =========================
// Cadastro de aluno
// =========================
// POST /alunos
func (ctrl *AlunoController) CreateAluno(c *fiber.Ctx) error {
	var body dto.AlunoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	novo := body.ToModel()
	if err := service.CreateAluno(ctrl.db(c), &novo); err != nil {
		return helper.FromFiberError(c, err)
	}

	// contrato legado: 200 com {message, id}
	return helper.JsonOK(c, "Aluno cadastrado com sucesso!", fiber.Map{
		"id": novo.AlunoID.String(),
	})
}

// =========================
// Lista de alunos (admin)
// =========================
// GET /alunos
func (ctrl *AlunoController) GetAllAlunos(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.db(c).Model(&model.AlunoModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count alunos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar alunos")
	}

	var alunos []model.AlunoModel
	if err := ctrl.db(c).
		Order("aluno_nome ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&alunos).Error; err != nil {
		log.Printf("[ERROR] lista alunos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar alunos")
	}

	result := make([]dto.AlunoDTO, 0, len(alunos))
	for _, a := range alunos {
		result = append(result, dto.ToAlunoDTO(a))
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", result, &pagination)
}

// =========================
// Detalhe do aluno
// =========================
// GET /alunos/:id
func (ctrl *AlunoController) GetAlunoByID(c *fiber.Ctx) error {
	id, err := parseAlunoID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	aluno, err := service.FindAluno(ctrl.db(c), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToAlunoDTO(*aluno))
}

// =========================
// Atualização do aluno
// =========================
// PUT /alunos/:id
func (ctrl *AlunoController) UpdateAluno(c *fiber.Ctx) error {
	id, err := parseAlunoID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.AlunoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	aluno, err := service.FindAluno(ctrl.db(c), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	body.ApplyTo(aluno)
	if err := service.UpdateAluno(ctrl.db(c), aluno); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Aluno atualizado com sucesso", dto.ToAlunoDTO(*aluno))
}

// =========================
// Remoção (hard delete)
// =========================
// DELETE /alunos/:id
func (ctrl *AlunoController) DeleteAluno(c *fiber.Ctx) error {
	id, err := parseAlunoID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctrl.db(c).Delete(&model.AlunoModel{}, "aluno_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete aluno: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao deletar aluno")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
	}

	return helper.JsonDeleted(c, "Aluno deletado com sucesso!", nil)
}

// =========================
// Foto do aluno (webp)
// =========================
// PUT /alunos/:id/foto
func (ctrl *AlunoController) UploadFoto(c *fiber.Ctx) error {
	id, err := parseAlunoID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fileHeader, err := c.FormFile("foto")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo 'foto' não informado")
	}
	if !constants.IsSupportedImageExt(fileHeader.Filename) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de imagem não suportado")
	}

	webpBytes, err := helper.ConvertToWebP(fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Imagem inválida")
	}

	res := ctrl.db(c).Model(&model.AlunoModel{}).
		Where("aluno_id = ?", id).
		Update("aluno_foto_webp", webpBytes)
	if res.Error != nil {
		log.Printf("[ERROR] upload foto: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar foto")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
	}

	return helper.JsonUpdated(c, "Foto atualizada com sucesso", nil)
}

// GET /alunos/:id/foto
func (ctrl *AlunoController) GetFoto(c *fiber.Ctx) error {
	id, err := parseAlunoID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var aluno model.AlunoModel
	if err := ctrl.db(c).Select("aluno_foto_webp").First(&aluno, "aluno_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		log.Printf("[ERROR] busca foto: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar foto")
	}
	if len(aluno.AlunoFotoWebp) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Aluno sem foto cadastrada")
	}

	c.Set(fiber.HeaderContentType, "image/webp")
	return c.Send(aluno.AlunoFotoWebp)
}
