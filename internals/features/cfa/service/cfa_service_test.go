package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"academiafc_backend/internals/features/cfa/model"
)

const msgNaoElegivel = "Aluno não encontrado ou não é da categoria CFA"

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return gdb, mock
}

func wantFiberError(t *testing.T, err error, code int, msg string) {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("esperava *fiber.Error, veio %v", err)
	}
	if fe.Code != code {
		t.Errorf("status = %d, want %d", fe.Code, code)
	}
	if msg != "" && fe.Message != msg {
		t.Errorf("mensagem = %q, want %q", fe.Message, msg)
	}
}

func situacaoRows(situacao string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"aluno_situacao"}).AddRow(situacao)
}

func TestElegibilidadeAlunoInexistente(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT "aluno_situacao" FROM "alunos"`).
		WillReturnRows(sqlmock.NewRows([]string{"aluno_situacao"}))

	err := EnsureElegibilidadeCFA(gdb, uuid.New())
	wantFiberError(t, err, fiber.StatusNotFound, msgNaoElegivel)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// aluno existe mas não é CFA: mesma resposta 404 do aluno inexistente
func TestElegibilidadeAlunoNaoCFA(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT "aluno_situacao" FROM "alunos"`).
		WillReturnRows(situacaoRows("ativo"))

	err := EnsureElegibilidadeCFA(gdb, uuid.New())
	wantFiberError(t, err, fiber.StatusNotFound, msgNaoElegivel)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestElegibilidadeAlunoCFA(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT "aluno_situacao" FROM "alunos"`).
		WillReturnRows(situacaoRows("CFA"))

	if err := EnsureElegibilidadeCFA(gdb, uuid.New()); err != nil {
		t.Fatalf("aluno CFA rejeitado: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// o gate roda dentro da transação do cadastro: aluno não elegível
// derruba a transação antes de qualquer insert
func TestCreateCfaInfoNaoElegivel(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "aluno_situacao" FROM "alunos"`).
		WillReturnRows(situacaoRows("inativo"))
	mock.ExpectRollback()

	info := model.CfaInfoModel{CfaAlunoID: uuid.New()}
	err := CreateCfaInfo(gdb, &info)
	wantFiberError(t, err, fiber.StatusNotFound, msgNaoElegivel)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// update sem perfil existente falha com 404 em vez de no-op silencioso
func TestUpdateCfaInfoSemPerfil(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "informacoes_adicionais_cfa"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	info := model.CfaInfoModel{CfaAlunoID: uuid.New()}
	err := UpdateCfaInfo(gdb, &info)
	wantFiberError(t, err, fiber.StatusNotFound, "")
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
