package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"academiafc_backend/internals/features/alunos/model"
)

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

func wantFiberCode(t *testing.T, err error, code int) *fiber.Error {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("esperava *fiber.Error, veio %v", err)
	}
	if fe.Code != code {
		t.Errorf("status = %d, want %d", fe.Code, code)
	}
	return fe
}

func TestEnsureDocumentosUnicosLivre(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "alunos"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	if err := EnsureDocumentosUnicos(gdb, "349981528", "52998224725", nil); err != nil {
		t.Fatalf("documentos livres rejeitados: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestEnsureDocumentosUnicosConflito(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "alunos"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	err := EnsureDocumentosUnicos(gdb, "349981528", "52998224725", nil)
	wantFiberCode(t, err, fiber.StatusConflict)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// documento duplicado detectado pela checagem dentro da transação: o
// insert nunca chega a rodar e a transação volta atrás
func TestCreateAlunoDocumentoDuplicado(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "alunos"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectRollback()

	novo := model.AlunoModel{AlunoRG: "349981528", AlunoCPF: "52998224725"}
	err := CreateAluno(gdb, &novo)
	wantFiberCode(t, err, fiber.StatusConflict)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// corrida entre submissões: a checagem passa mas o índice único do banco
// barra o insert; a violação 23505 também vira 409
func TestCreateAlunoCorridaIndiceUnico(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "alunos"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`INSERT INTO "alunos"`).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	novo := model.AlunoModel{AlunoRG: "349981528", AlunoCPF: "52998224725"}
	err := CreateAluno(gdb, &novo)
	wantFiberCode(t, err, fiber.StatusConflict)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestFindAlunoInexistente(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "alunos"`).
		WillReturnRows(sqlmock.NewRows([]string{"aluno_id"}))

	_, err := FindAluno(gdb, uuid.New())
	wantFiberCode(t, err, fiber.StatusNotFound)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// o contexto da requisição atravessa as queries: cancelado, a busca
// aborta antes de tocar o banco
func TestFindAlunoContextoCancelado(t *testing.T) {
	gdb, _ := newMockDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FindAluno(gdb.WithContext(ctx), uuid.New())
	wantFiberCode(t, err, fiber.StatusInternalServerError)
}
