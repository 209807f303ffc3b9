package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	alunoModel "academiafc_backend/internals/features/alunos/model"
	"academiafc_backend/internals/features/cfa/model"
)

// EnsureElegibilidadeCFA exige aluno existente com situação CFA.
// O cliente recebe 404 nos dois casos (contrato legado); o log distingue.
func EnsureElegibilidadeCFA(tx *gorm.DB, alunoID uuid.UUID) error {
	var aluno alunoModel.AlunoModel
	if err := tx.Select("aluno_situacao").
		First(&aluno, "aluno_id = ?", alunoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Aluno não encontrado ou não é da categoria CFA")
		}
		log.Printf("[ERROR] cfa: busca de aluno: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Erro ao verificar aluno")
	}
	if aluno.AlunoSituacao != alunoModel.SituacaoCFA {
		log.Printf("[WARN] cfa: aluno %s não é CFA (situação=%s)", alunoID, aluno.AlunoSituacao)
		return fiber.NewError(fiber.StatusNotFound, "Aluno não encontrado ou não é da categoria CFA")
	}
	return nil
}

// CreateCfaInfo insere o perfil, com o gate de elegibilidade na mesma
// transação do insert.
func CreateCfaInfo(db *gorm.DB, info *model.CfaInfoModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := EnsureElegibilidadeCFA(tx, info.CfaAlunoID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.CfaInfoModel{}).
			Where("cfa_aluno_id = ?", info.CfaAlunoID).
			Count(&count).Error; err != nil {
			log.Printf("[ERROR] cfa: checagem de perfil existente: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao cadastrar informações adicionais")
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Aluno já possui informações adicionais cadastradas")
		}

		if err := tx.Create(info).Error; err != nil {
			log.Printf("[ERROR] cfa: insert: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao cadastrar informações adicionais")
		}
		return nil
	})
}

// UpdateCfaInfo sobrescreve o perfil do aluno. Sem linha existente o
// update falha com 404 — o no-op silencioso do sistema antigo era defeito.
func UpdateCfaInfo(db *gorm.DB, info *model.CfaInfoModel) error {
	res := db.Model(&model.CfaInfoModel{}).
		Where("cfa_aluno_id = ?", info.CfaAlunoID).
		Updates(map[string]any{
			"cfa_posicao_favorita_1": info.CfaPosicaoFavorita1,
			"cfa_posicao_favorita_2": info.CfaPosicaoFavorita2,
			"cfa_federado":           info.CfaFederado,
			"cfa_extras":             info.CfaExtras,
		})
	if res.Error != nil {
		log.Printf("[ERROR] cfa: update: %v", res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Erro ao atualizar informações adicionais")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Informações adicionais não encontradas para o aluno")
	}
	return nil
}

func FindCfaInfo(db *gorm.DB, alunoID uuid.UUID) (*model.CfaInfoModel, error) {
	var info model.CfaInfoModel
	if err := db.First(&info, "cfa_aluno_id = ?", alunoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Informações adicionais não encontradas para o aluno")
		}
		log.Printf("[ERROR] cfa: busca: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar informações adicionais")
	}
	return &info, nil
}
