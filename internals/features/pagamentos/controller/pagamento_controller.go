package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academiafc_backend/internals/constants"
	"academiafc_backend/internals/features/pagamentos/dto"
	"academiafc_backend/internals/features/pagamentos/service"
	helper "academiafc_backend/internals/helpers"
	authMw "academiafc_backend/internals/middlewares/auth"
)

type PagamentoController struct {
	DB *gorm.DB
}

func NewPagamentoController(db *gorm.DB) *PagamentoController {
	return &PagamentoController{DB: db}
}

// db amarra a conexão ao contexto da requisição (timeout de 5s do bootstrap).
func (ctrl *PagamentoController) db(c *fiber.Ctx) *gorm.DB {
	return ctrl.DB.WithContext(c.UserContext())
}

// =========================
// Registrar pagamento
// =========================
// POST /pagamentos
func (ctrl *PagamentoController) CreatePagamento(c *fiber.Ctx) error {
	var body dto.CreatePagamentoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de requisição inválido")
	}
	if err := helper.ValidateStruct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	alunoID, err := uuid.Parse(body.AlunoID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de aluno inválido")
	}

	// responsável só registra pagamento do próprio aluno (id vem no body,
	// então o guard de rota não alcança, checa aqui); a comparação é por
	// uuid.UUID para não depender da forma textual enviada
	if role, _ := c.Locals(authMw.LocUserRole).(string); role == constants.RoleResponsavel {
		linked, _ := c.Locals(authMw.LocAlunoID).(string)
		linkedID, err := uuid.Parse(linked)
		if err != nil || linkedID != alunoID {
			return helper.JsonError(c, fiber.StatusForbidden, "Acesso restrito ao aluno vinculado")
		}
	}

	pg := body.ToModel(alunoID)
	if err := service.RegistrarPagamento(ctrl.db(c), &pg); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Pagamento registrado com sucesso", dto.ToPagamentoDTO(pg))
}

// =========================
// Pagamentos do aluno
// =========================
// GET /alunos/:id/pagamentos
func (ctrl *PagamentoController) GetPagamentosByAluno(c *fiber.Ctx) error {
	return ctrl.listPagamentos(c, false)
}

// GET /alunos/:id/pagamentos/pendentes
func (ctrl *PagamentoController) GetPagamentosPendentes(c *fiber.Ctx) error {
	return ctrl.listPagamentos(c, true)
}

func (ctrl *PagamentoController) listPagamentos(c *fiber.Ctx, somentePendentes bool) error {
	alunoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de aluno inválido")
	}

	rows, err := service.ListByAluno(ctrl.db(c), alunoID, somentePendentes)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	result := make([]dto.PagamentoDTO, 0, len(rows))
	for _, p := range rows {
		result = append(result, dto.ToPagamentoDTO(p))
	}
	return helper.JsonList(c, "ok", result, nil)
}
