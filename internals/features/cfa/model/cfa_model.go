package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CfaInfoModel é o perfil complementar de aluno da categoria CFA.
// Uma linha por aluno; extras guarda os campos livres em JSONB.
type CfaInfoModel struct {
	CfaID               uuid.UUID `gorm:"column:cfa_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	CfaAlunoID          uuid.UUID `gorm:"column:cfa_aluno_id;type:uuid;not null;uniqueIndex"`
	CfaPosicaoFavorita1 string    `gorm:"column:cfa_posicao_favorita_1;type:varchar(40)"`
	CfaPosicaoFavorita2 string    `gorm:"column:cfa_posicao_favorita_2;type:varchar(40)"`
	CfaFederado         bool      `gorm:"column:cfa_federado;not null;default:false"`

	CfaExtras datatypes.JSON `gorm:"column:cfa_extras;type:jsonb"`

	CfaCreatedAt time.Time `gorm:"column:cfa_created_at;autoCreateTime"`
	CfaUpdatedAt time.Time `gorm:"column:cfa_updated_at;autoUpdateTime"`
}

func (CfaInfoModel) TableName() string { return "informacoes_adicionais_cfa" }
