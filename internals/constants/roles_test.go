package constants

import "testing"

func TestPermissionTable(t *testing.T) {
	cases := []struct {
		op   Operation
		role string
		want bool
	}{
		{OpAlunoCreate, RoleAdmin, true},
		{OpAlunoCreate, RoleResponsavel, false},
		{OpAlunoUpdate, RoleResponsavel, false},
		{OpAlunoDelete, RoleResponsavel, false},
		{OpAlunoRead, RoleAdmin, true},
		{OpAlunoRead, RoleResponsavel, true},
		{OpAlunoList, RoleResponsavel, false},
		{OpPagamentoCreate, RoleResponsavel, true},
		{OpPagamentoRead, RoleResponsavel, true},
		{OpCfaManage, RoleResponsavel, false},
		{OpCfaManage, RoleAdmin, true},
		{OpUsuarioSetSenha, RoleResponsavel, false},
		{OpUsuarioSetSenha, RoleAdmin, true},
		{OpAlunoCreate, "treinador", false}, // papel desconhecido nunca passa
	}
	for _, tc := range cases {
		if got := IsAllowed(tc.op, tc.role); got != tc.want {
			t.Errorf("IsAllowed(%s, %s) = %v, want %v", tc.op, tc.role, got, tc.want)
		}
	}
}

func TestIsKnownRole(t *testing.T) {
	if !IsKnownRole(RoleAdmin) || !IsKnownRole(RoleResponsavel) {
		t.Error("papéis conhecidos rejeitados")
	}
	if IsKnownRole("treinador") || IsKnownRole("") {
		t.Error("papel desconhecido aceito")
	}
}
