// file: internals/helpers/documento.go
package helper

import "strings"

// Validação de dígito verificador de CPF e RG.
// CPF: 11 dígitos, dois verificadores módulo 11.
// RG: 9 posições (padrão SSP-SP), verificador módulo 11 que pode ser "X".

// NormalizeDocumento remove pontuação usual (".", "-", "/" e espaços),
// preservando o dígito "X" de RG em maiúscula.
func NormalizeDocumento(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(s)) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'X':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateCPF confere os dois dígitos verificadores do CPF.
func ValidateCPF(cpf string) bool {
	doc := NormalizeDocumento(cpf)
	if len(doc) != 11 || strings.ContainsRune(doc, 'X') {
		return false
	}
	// sequências com todos os dígitos iguais têm verificador válido mas são inválidas
	if strings.Count(doc, string(doc[0])) == 11 {
		return false
	}

	digit := func(upTo int) int {
		sum := 0
		for i := 0; i < upTo; i++ {
			sum += int(doc[i]-'0') * (upTo + 1 - i)
		}
		d := 11 - sum%11
		if d >= 10 {
			return 0
		}
		return d
	}

	return digit(9) == int(doc[9]-'0') && digit(10) == int(doc[10]-'0')
}

// ValidateRG confere o dígito verificador do RG (regra SSP-SP: pesos 2..9,
// módulo 11; resto 10 vira "X" e resto 11 vira 0).
func ValidateRG(rg string) bool {
	doc := NormalizeDocumento(rg)
	if len(doc) != 9 {
		return false
	}
	for i := 0; i < 8; i++ {
		if doc[i] < '0' || doc[i] > '9' {
			return false
		}
	}

	sum := 0
	for i := 0; i < 8; i++ {
		sum += int(doc[i]-'0') * (2 + i)
	}
	switch 11 - sum%11 {
	case 10:
		return doc[8] == 'X'
	case 11:
		return doc[8] == '0'
	default:
		return int(doc[8]-'0') == 11-sum%11
	}
}
