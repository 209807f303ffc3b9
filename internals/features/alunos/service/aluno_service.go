package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"academiafc_backend/internals/features/alunos/model"
)

// =========================
// Guard de unicidade
// =========================

// EnsureDocumentosUnicos rejeita RG/CPF já cadastrados. Roda dentro da
// mesma transação do insert; o índice único do banco é a segunda linha
// de defesa contra corrida entre submissões concorrentes.
func EnsureDocumentosUnicos(tx *gorm.DB, rg, cpf string, excluir *uuid.UUID) error {
	q := tx.Model(&model.AlunoModel{}).
		Where("aluno_rg = ? OR aluno_cpf = ?", rg, cpf)
	if excluir != nil {
		q = q.Where("aluno_id <> ?", *excluir)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		log.Printf("[ERROR] unicidade de documentos: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "RG ou CPF já cadastrado para outro aluno")
	}
	return nil
}

// isUniqueViolation reconhece a violação de índice único do Postgres (23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// =========================
// Mutações
// =========================

func CreateAluno(db *gorm.DB, novo *model.AlunoModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := EnsureDocumentosUnicos(tx, novo.AlunoRG, novo.AlunoCPF, nil); err != nil {
			return err
		}
		if err := tx.Create(novo).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "RG ou CPF já cadastrado para outro aluno")
			}
			log.Printf("[ERROR] create aluno: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao cadastrar aluno")
		}
		return nil
	})
}

func UpdateAluno(db *gorm.DB, atual *model.AlunoModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		id := atual.AlunoID
		if err := EnsureDocumentosUnicos(tx, atual.AlunoRG, atual.AlunoCPF, &id); err != nil {
			return err
		}
		if err := tx.Save(atual).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "RG ou CPF já cadastrado para outro aluno")
			}
			log.Printf("[ERROR] update aluno: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao atualizar aluno")
		}
		return nil
	})
}

// FindAluno carrega um aluno por id; gorm.ErrRecordNotFound vira 404.
func FindAluno(db *gorm.DB, id uuid.UUID) (*model.AlunoModel, error) {
	var aluno model.AlunoModel
	if err := db.First(&aluno, "aluno_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Aluno não encontrado")
		}
		log.Printf("[ERROR] busca aluno: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar aluno")
	}
	return &aluno, nil
}
