package model

import (
	"time"

	"github.com/google/uuid"
)

// Situações possíveis do aluno; CFA exige perfil complementar.
const (
	SituacaoAtivo   = "ativo"
	SituacaoInativo = "inativo"
	SituacaoCFA     = "CFA"
)

type AlunoModel struct {
	AlunoID               uuid.UUID `gorm:"column:aluno_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	AlunoNome             string    `gorm:"column:aluno_nome;type:varchar(120);not null"`
	AlunoDataNascimento   string    `gorm:"column:aluno_data_nascimento;type:varchar(10);not null"` // DD-MM-YYYY
	AlunoRG               string    `gorm:"column:aluno_rg;type:varchar(12);not null;uniqueIndex"`
	AlunoCPF              string    `gorm:"column:aluno_cpf;type:varchar(11);not null;uniqueIndex"`
	AlunoNomeResponsavel  string    `gorm:"column:aluno_nome_responsavel;type:varchar(120)"`
	AlunoEndereco         string    `gorm:"column:aluno_endereco;type:varchar(200)"`
	AlunoBairro           string    `gorm:"column:aluno_bairro;type:varchar(80)"`
	AlunoCidade           string    `gorm:"column:aluno_cidade;type:varchar(80)"`
	AlunoTelefone         string    `gorm:"column:aluno_telefone;type:varchar(20);not null"`
	AlunoEmail            *string   `gorm:"column:aluno_email;type:varchar(120)"`
	AlunoSituacao         string    `gorm:"column:aluno_situacao;type:varchar(20);not null"`
	AlunoBolsista         bool      `gorm:"column:aluno_bolsista;not null"`
	AlunoPercentualBolsa  *float64  `gorm:"column:aluno_percentual_bolsa;type:numeric(5,2)"` // obrigatório sse bolsista
	AlunoValorMensalidade float64   `gorm:"column:aluno_valor_mensalidade;type:numeric(10,2);not null"`
	AlunoAltura           *float64  `gorm:"column:aluno_altura;type:numeric(5,2)"`
	AlunoPeso             *float64  `gorm:"column:aluno_peso;type:numeric(5,2)"`
	AlunoFotoWebp         []byte    `gorm:"column:aluno_foto_webp;type:bytea" json:"-"`

	AlunoCreatedAt time.Time `gorm:"column:aluno_created_at;autoCreateTime"`
	AlunoUpdatedAt time.Time `gorm:"column:aluno_updated_at;autoUpdateTime"`
}

func (AlunoModel) TableName() string { return "alunos" }
