package dto

import (
	"errors"
	"time"

	"academiafc_backend/internals/features/alunos/model"
	helper "academiafc_backend/internals/helpers"
)

// ====================
// Request DTO
// ====================

// AlunoRequest serve para create e update (o update revalida tudo).
type AlunoRequest struct {
	Nome             string   `json:"nome" validate:"required"`
	DataNascimento   string   `json:"data_nascimento" validate:"required,data_br"`
	RG               string   `json:"rg" validate:"required,rg"`
	CPF              string   `json:"cpf" validate:"required,cpf"`
	NomeResponsavel  string   `json:"nome_responsavel"`
	Endereco         string   `json:"endereco"`
	Bairro           string   `json:"bairro"`
	Cidade           string   `json:"cidade"`
	Telefone         string   `json:"telefone" validate:"required"`
	Email            *string  `json:"email" validate:"omitempty,email"`
	Situacao         string   `json:"situacao" validate:"required,oneof=ativo inativo CFA"`
	Bolsista         *bool    `json:"bolsista" validate:"required"`
	PercentualBolsa  *float64 `json:"percentual_bolsa" validate:"omitempty,gt=0,casas2"`
	ValorMensalidade float64  `json:"valor_mensalidade" validate:"required,gt=0,casas2"`
	Altura           *float64 `json:"altura" validate:"omitempty,gt=0,casas2"`
	Peso             *float64 `json:"peso" validate:"omitempty,gt=0,casas2"`
}

// Validate roda as regras por campo (fail-fast) e depois a regra cruzada
// bolsista → percentual_bolsa obrigatório.
func (r *AlunoRequest) Validate() error {
	if err := helper.ValidateStruct(r); err != nil {
		return err
	}
	if r.Bolsista != nil && *r.Bolsista && r.PercentualBolsa == nil {
		return errors.New("percentual_bolsa: obrigatório quando bolsista")
	}
	return nil
}

// ToModel normaliza (tira pontuação de RG/CPF) e monta o registro.
func (r *AlunoRequest) ToModel() model.AlunoModel {
	bolsista := false
	if r.Bolsista != nil {
		bolsista = *r.Bolsista
	}
	return model.AlunoModel{
		AlunoNome:             r.Nome,
		AlunoDataNascimento:   r.DataNascimento,
		AlunoRG:               helper.NormalizeDocumento(r.RG),
		AlunoCPF:              helper.NormalizeDocumento(r.CPF),
		AlunoNomeResponsavel:  r.NomeResponsavel,
		AlunoEndereco:         r.Endereco,
		AlunoBairro:           r.Bairro,
		AlunoCidade:           r.Cidade,
		AlunoTelefone:         r.Telefone,
		AlunoEmail:            r.Email,
		AlunoSituacao:         r.Situacao,
		AlunoBolsista:         bolsista,
		AlunoPercentualBolsa:  r.PercentualBolsa,
		AlunoValorMensalidade: r.ValorMensalidade,
		AlunoAltura:           r.Altura,
		AlunoPeso:             r.Peso,
	}
}

// ApplyTo sobrescreve um registro existente (update completo).
func (r *AlunoRequest) ApplyTo(m *model.AlunoModel) {
	novo := r.ToModel()
	novo.AlunoID = m.AlunoID
	novo.AlunoFotoWebp = m.AlunoFotoWebp
	novo.AlunoCreatedAt = m.AlunoCreatedAt
	*m = novo
}

// ====================
// Response DTO
// ====================

type AlunoDTO struct {
	AlunoID          string    `json:"aluno_id"`
	Nome             string    `json:"nome"`
	DataNascimento   string    `json:"data_nascimento"`
	RG               string    `json:"rg"`
	CPF              string    `json:"cpf"`
	NomeResponsavel  string    `json:"nome_responsavel,omitempty"`
	Endereco         string    `json:"endereco,omitempty"`
	Bairro           string    `json:"bairro,omitempty"`
	Cidade           string    `json:"cidade,omitempty"`
	Telefone         string    `json:"telefone"`
	Email            *string   `json:"email,omitempty"`
	Situacao         string    `json:"situacao"`
	Bolsista         bool      `json:"bolsista"`
	PercentualBolsa  *float64  `json:"percentual_bolsa,omitempty"`
	ValorMensalidade float64   `json:"valor_mensalidade"`
	Altura           *float64  `json:"altura,omitempty"`
	Peso             *float64  `json:"peso,omitempty"`
	TemFoto          bool      `json:"tem_foto"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToAlunoDTO(m model.AlunoModel) AlunoDTO {
	return AlunoDTO{
		AlunoID:          m.AlunoID.String(),
		Nome:             m.AlunoNome,
		DataNascimento:   m.AlunoDataNascimento,
		RG:               m.AlunoRG,
		CPF:              m.AlunoCPF,
		NomeResponsavel:  m.AlunoNomeResponsavel,
		Endereco:         m.AlunoEndereco,
		Bairro:           m.AlunoBairro,
		Cidade:           m.AlunoCidade,
		Telefone:         m.AlunoTelefone,
		Email:            m.AlunoEmail,
		Situacao:         m.AlunoSituacao,
		Bolsista:         m.AlunoBolsista,
		PercentualBolsa:  m.AlunoPercentualBolsa,
		ValorMensalidade: m.AlunoValorMensalidade,
		Altura:           m.AlunoAltura,
		Peso:             m.AlunoPeso,
		TemFoto:          len(m.AlunoFotoWebp) > 0,
		CreatedAt:        m.AlunoCreatedAt,
	}
}
