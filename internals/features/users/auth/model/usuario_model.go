package model

import (
	"time"

	"github.com/google/uuid"
)

// UsuarioModel é o registro de login (admin ou responsável).
// Provisionado fora de banda; só a senha muda via reset.
type UsuarioModel struct {
	UsuarioID       uuid.UUID  `gorm:"column:usuario_id;primaryKey;type:uuid;default:gen_random_uuid()"`
	UsuarioUsername string     `gorm:"column:usuario_username;type:varchar(60);not null;uniqueIndex"`
	UsuarioSenha    string     `gorm:"column:usuario_senha;type:varchar(100);not null"` // hash bcrypt
	UsuarioRole     string     `gorm:"column:usuario_role;type:varchar(20);not null"`
	UsuarioAlunoID  *uuid.UUID `gorm:"column:usuario_aluno_id;type:uuid"` // presente sse role = responsavel

	UsuarioCreatedAt time.Time `gorm:"column:usuario_created_at;autoCreateTime"`
	UsuarioUpdatedAt time.Time `gorm:"column:usuario_updated_at;autoUpdateTime"`
}

func (UsuarioModel) TableName() string { return "usuarios" }
