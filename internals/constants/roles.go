package constants

import "fmt"

// Papéis de login suportados
const (
	RoleAdmin       = "admin"
	RoleResponsavel = "responsavel"
)

// Template de mensagem de erro de papel
const ErrRoleNotAllowed = "❌ Seu papel não permite acessar %s."

func RoleErrorGeneric(feature string) string {
	return fmt.Sprintf(ErrRoleNotAllowed, feature)
}

// ==========================
// ✅ Operações nomeadas
// ==========================
// Cada mutação/leitura da API é uma operação nomeada; a tabela abaixo é a
// única fonte de verdade de autorização (nada de checagem de role espalhada
// pelos controllers).
type Operation string

const (
	OpAlunoCreate     Operation = "aluno:create"
	OpAlunoUpdate     Operation = "aluno:update"
	OpAlunoDelete     Operation = "aluno:delete"
	OpAlunoRead       Operation = "aluno:read"
	OpAlunoList       Operation = "aluno:list"
	OpPagamentoCreate Operation = "pagamento:create"
	OpPagamentoRead   Operation = "pagamento:read"
	OpCfaManage       Operation = "cfa:manage"
	OpUsuarioSetSenha Operation = "usuario:set-password"
)

// Tabela de permissão declarativa (operação → papéis autorizados).
// Responsável só enxerga o próprio aluno; essa restrição adicional é
// aplicada pelo guard RequireOwnAluno, não aqui.
var Permissions = map[Operation][]string{
	OpAlunoCreate:     {RoleAdmin},
	OpAlunoUpdate:     {RoleAdmin},
	OpAlunoDelete:     {RoleAdmin},
	OpAlunoRead:       {RoleAdmin, RoleResponsavel},
	OpAlunoList:       {RoleAdmin}, // responsável não enxerga o roster inteiro
	OpPagamentoCreate: {RoleAdmin, RoleResponsavel},
	OpPagamentoRead:   {RoleAdmin, RoleResponsavel},
	OpCfaManage:       {RoleAdmin},
	OpUsuarioSetSenha: {RoleAdmin},
}

// IsAllowed consulta a tabela de permissão.
func IsAllowed(op Operation, role string) bool {
	for _, allowed := range Permissions[op] {
		if allowed == role {
			return true
		}
	}
	return false
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var AllRoles = []string{
	RoleAdmin,
	RoleResponsavel,
}

// IsKnownRole valida o papel vindo do banco antes de emitir token.
func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
