package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	alunoModel "academiafc_backend/internals/features/alunos/model"
	"academiafc_backend/internals/features/pagamentos/model"
)

// ComputePago deriva a quitação: pago sse valor_pago cobre a mensalidade.
func ComputePago(valorPago, valorMensalidade float64) bool {
	return valorPago >= valorMensalidade
}

// =========================
// Reconciliação de pagamento
// =========================

// RegistrarPagamento busca a mensalidade atual do aluno, grava o snapshot
// e o flag pago derivado — tudo numa transação só, para a mensalidade lida
// ser a mesma persistida mesmo com updates concorrentes no aluno.
func RegistrarPagamento(db *gorm.DB, pg *model.PagamentoModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var aluno alunoModel.AlunoModel
		if err := tx.Select("aluno_valor_mensalidade").
			First(&aluno, "aluno_id = ?", pg.PagamentoAlunoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Aluno não encontrado")
			}
			log.Printf("[ERROR] pagamento: busca de mensalidade: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao registrar pagamento")
		}

		pg.PagamentoValorMensalidade = aluno.AlunoValorMensalidade
		pg.PagamentoPago = ComputePago(pg.PagamentoValorPago, pg.PagamentoValorMensalidade)

		if err := tx.Create(pg).Error; err != nil {
			log.Printf("[ERROR] pagamento: insert: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao registrar pagamento")
		}
		return nil
	})
}

// =========================
// Consultas
// =========================

func ListByAluno(db *gorm.DB, alunoID uuid.UUID, somentePendentes bool) ([]model.PagamentoModel, error) {
	q := db.Where("pagamento_aluno_id = ?", alunoID)
	if somentePendentes {
		q = q.Where("pagamento_pago = ?", false)
	}

	var rows []model.PagamentoModel
	if err := q.Order("pagamento_ano ASC, pagamento_mes ASC, pagamento_created_at ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] pagamento: lista: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar pagamentos")
	}
	return rows, nil
}
