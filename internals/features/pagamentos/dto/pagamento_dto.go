package dto

import (
	"time"

	"github.com/google/uuid"

	"academiafc_backend/internals/features/pagamentos/model"
)

// ====================
// Request DTO
// ====================

type CreatePagamentoRequest struct {
	AlunoID   string  `json:"aluno_id" validate:"required,uuid"`
	Mes       int     `json:"mes" validate:"required,min=1,max=12"`
	Ano       int     `json:"ano" validate:"required,min=2000,max=2100"`
	ValorPago float64 `json:"valor_pago" validate:"required,gt=0,casas2"`
}

// ToModel monta a linha ainda sem o snapshot da mensalidade — quem
// preenche valor_mensalidade e pago é o service, dentro da transação.
func (r CreatePagamentoRequest) ToModel(alunoID uuid.UUID) model.PagamentoModel {
	return model.PagamentoModel{
		PagamentoAlunoID:   alunoID,
		PagamentoMes:       r.Mes,
		PagamentoAno:       r.Ano,
		PagamentoValorPago: r.ValorPago,
	}
}

// ====================
// Response DTO
// ====================

type PagamentoDTO struct {
	PagamentoID      string    `json:"pagamento_id"`
	AlunoID          string    `json:"aluno_id"`
	Mes              int       `json:"mes"`
	Ano              int       `json:"ano"`
	ValorMensalidade float64   `json:"valor_mensalidade"`
	ValorPago        float64   `json:"valor_pago"`
	Pago             bool      `json:"pago"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToPagamentoDTO(m model.PagamentoModel) PagamentoDTO {
	return PagamentoDTO{
		PagamentoID:      m.PagamentoID.String(),
		AlunoID:          m.PagamentoAlunoID.String(),
		Mes:              m.PagamentoMes,
		Ano:              m.PagamentoAno,
		ValorMensalidade: m.PagamentoValorMensalidade,
		ValorPago:        m.PagamentoValorPago,
		Pago:             m.PagamentoPago,
		CreatedAt:        m.PagamentoCreatedAt,
	}
}
