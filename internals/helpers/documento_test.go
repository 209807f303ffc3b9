package helper

import "testing"

func TestNormalizeDocumento(t *testing.T) {
	cases := map[string]string{
		"529.982.247-25": "52998224725",
		"34.998.152-8":   "349981528",
		" 60.000.000-x ": "60000000X",
		"abc":            "",
	}
	for in, want := range cases {
		if got := NormalizeDocumento(in); got != want {
			t.Errorf("NormalizeDocumento(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateCPF(t *testing.T) {
	valid := []string{
		"52998224725",
		"529.982.247-25",
	}
	for _, cpf := range valid {
		if !ValidateCPF(cpf) {
			t.Errorf("ValidateCPF(%q) = false, want true", cpf)
		}
	}

	invalid := []string{
		"52998224724", // último dígito errado
		"52998224735", // primeiro verificador errado
		"11111111111", // sequência repetida
		"5299822472",  // curto
		"529982247251",
		"",
		"abcdefghijk",
	}
	for _, cpf := range invalid {
		if ValidateCPF(cpf) {
			t.Errorf("ValidateCPF(%q) = true, want false", cpf)
		}
	}
}

func TestValidateRG(t *testing.T) {
	valid := []string{
		"34.998.152-8",
		"349981528",
		"60.000.000-X", // resto 10 vira X
		"60.000.000-x",
		"13.000.000-0", // resto 11 vira 0
	}
	for _, rg := range valid {
		if !ValidateRG(rg) {
			t.Errorf("ValidateRG(%q) = false, want true", rg)
		}
	}

	invalid := []string{
		"34.998.152-7",
		"60.000.000-9", // deveria ser X
		"34998152",     // sem verificador
		"3499815289",   // longo
		"",
	}
	for _, rg := range invalid {
		if ValidateRG(rg) {
			t.Errorf("ValidateRG(%q) = true, want false", rg)
		}
	}
}
