package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"academiafc_backend/internals/features/cfa/model"
)

// ====================
// Request DTO
// ====================

type CfaInfoRequest struct {
	PosicaoFavorita1 string         `json:"posicao_favorita_1" validate:"required"`
	PosicaoFavorita2 string         `json:"posicao_favorita_2"`
	Federado         *bool          `json:"federado" validate:"required"`
	Extras           map[string]any `json:"extras"`
}

func (r CfaInfoRequest) ToModel(alunoID uuid.UUID) (model.CfaInfoModel, error) {
	m := model.CfaInfoModel{
		CfaAlunoID:          alunoID,
		CfaPosicaoFavorita1: r.PosicaoFavorita1,
		CfaPosicaoFavorita2: r.PosicaoFavorita2,
	}
	if r.Federado != nil {
		m.CfaFederado = *r.Federado
	}
	if len(r.Extras) > 0 {
		extras, err := json.Marshal(r.Extras)
		if err != nil {
			return m, err
		}
		m.CfaExtras = datatypes.JSON(extras)
	}
	return m, nil
}

// ====================
// Response DTO
// ====================

type CfaInfoDTO struct {
	AlunoID          string         `json:"aluno_id"`
	PosicaoFavorita1 string         `json:"posicao_favorita_1"`
	PosicaoFavorita2 string         `json:"posicao_favorita_2,omitempty"`
	Federado         bool           `json:"federado"`
	Extras           datatypes.JSON `json:"extras,omitempty"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func ToCfaInfoDTO(m model.CfaInfoModel) CfaInfoDTO {
	return CfaInfoDTO{
		AlunoID:          m.CfaAlunoID.String(),
		PosicaoFavorita1: m.CfaPosicaoFavorita1,
		PosicaoFavorita2: m.CfaPosicaoFavorita2,
		Federado:         m.CfaFederado,
		Extras:           m.CfaExtras,
		UpdatedAt:        m.CfaUpdatedAt,
	}
}
