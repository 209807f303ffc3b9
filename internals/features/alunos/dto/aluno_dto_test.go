package dto

import (
	"strings"
	"testing"
)

func boolPtr(b bool) *bool      { return &b }
func f64Ptr(v float64) *float64 { return &v }
func strPtr(s string) *string   { return &s }

func validRequest() AlunoRequest {
	return AlunoRequest{
		Nome:             "João da Silva",
		DataNascimento:   "05-03-2012",
		RG:               "34.998.152-8",
		CPF:              "529.982.247-25",
		NomeResponsavel:  "Maria da Silva",
		Telefone:         "(11) 91234-5678",
		Situacao:         "CFA",
		Bolsista:         boolPtr(false),
		ValorMensalidade: 200,
	}
}

func TestAlunoRequestValid(t *testing.T) {
	r := validRequest()
	if err := r.Validate(); err != nil {
		t.Fatalf("payload válido rejeitado: %v", err)
	}

	m := r.ToModel()
	if m.AlunoRG != "349981528" {
		t.Errorf("RG não normalizado: %q", m.AlunoRG)
	}
	if m.AlunoCPF != "52998224725" {
		t.Errorf("CPF não normalizado: %q", m.AlunoCPF)
	}
	if m.AlunoBolsista {
		t.Error("bolsista deveria ser false")
	}
}

func TestAlunoRequestFailFast(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*AlunoRequest)
		wantSub string
	}{
		{"nome obrigatório", func(r *AlunoRequest) { r.Nome = "" }, "Nome"},
		{"telefone obrigatório", func(r *AlunoRequest) { r.Telefone = "" }, "Telefone"},
		{"situação fora do enum", func(r *AlunoRequest) { r.Situacao = "matriculado" }, "Situacao"},
		{"cpf com verificador errado", func(r *AlunoRequest) { r.CPF = "529.982.247-24" }, "CPF"},
		{"rg com verificador errado", func(r *AlunoRequest) { r.RG = "34.998.152-7" }, "RG"},
		{"data fora do formato", func(r *AlunoRequest) { r.DataNascimento = "2012-03-05" }, "DataNascimento"},
		{"email inválido", func(r *AlunoRequest) { r.Email = strPtr("nao-eh-email") }, "Email"},
		{"altura com 3 casas", func(r *AlunoRequest) { r.Altura = f64Ptr(1.753) }, "Altura"},
		{"mensalidade zerada", func(r *AlunoRequest) { r.ValorMensalidade = 0 }, "ValorMensalidade"},
		{"bolsista ausente", func(r *AlunoRequest) { r.Bolsista = nil }, "Bolsista"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRequest()
			tc.mutate(&r)
			err := r.Validate()
			if err == nil {
				t.Fatal("payload inválido aceito")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("mensagem %q não cita o campo %q", err.Error(), tc.wantSub)
			}
		})
	}
}

// regra cruzada: percentual_bolsa obrigatório sse bolsista
func TestAlunoRequestBolsista(t *testing.T) {
	r := validRequest()
	r.Bolsista = boolPtr(true)
	if err := r.Validate(); err == nil {
		t.Fatal("bolsista sem percentual aceito")
	}

	r.PercentualBolsa = f64Ptr(50)
	if err := r.Validate(); err != nil {
		t.Fatalf("bolsista com percentual rejeitado: %v", err)
	}

	// percentual negativo cai na regra por campo (gt=0)
	r.PercentualBolsa = f64Ptr(-10)
	if err := r.Validate(); err == nil {
		t.Fatal("percentual negativo aceito")
	}

	// percentual sem bolsista é permitido pelas regras por campo
	r = validRequest()
	r.PercentualBolsa = f64Ptr(25)
	if err := r.Validate(); err != nil {
		t.Fatalf("percentual sem bolsista rejeitado: %v", err)
	}
}
