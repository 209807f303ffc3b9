package model

import (
	"time"

	"github.com/google/uuid"
)

// PagamentoModel é imutável depois de criado: não há update/delete.
// Vários pagamentos parciais do mesmo mês geram linhas separadas.
type PagamentoModel struct {
	PagamentoID      uuid.UUID `gorm:"column:pagamento_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	PagamentoAlunoID uuid.UUID `gorm:"column:pagamento_aluno_id;type:uuid;not null;index"`
	PagamentoMes     int       `gorm:"column:pagamento_mes;not null"`
	PagamentoAno     int       `gorm:"column:pagamento_ano;not null"`

	// snapshot da mensalidade no momento do registro — mudança de
	// mensalidade não reescreve histórico
	PagamentoValorMensalidade float64 `gorm:"column:pagamento_valor_mensalidade;type:numeric(10,2);not null"`
	PagamentoValorPago        float64 `gorm:"column:pagamento_valor_pago;type:numeric(10,2);not null"`

	// derivado de valor_pago >= valor_mensalidade; nunca editável
	PagamentoPago bool `gorm:"column:pagamento_pago;not null"`

	PagamentoCreatedAt time.Time `gorm:"column:pagamento_created_at;autoCreateTime"`
}

func (PagamentoModel) TableName() string { return "pagamentos" }
