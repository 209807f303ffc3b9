package service

import "testing"

func TestComputePago(t *testing.T) {
	cases := []struct {
		valorPago, mensalidade float64
		want                   bool
	}{
		{200, 200, true},  // cobre exatamente
		{250, 200, true},  // acima
		{150, 200, false}, // parcial
		{0.01, 200, false},
		{199.99, 200, false},
		{200.01, 200, true},
	}
	for _, tc := range cases {
		if got := ComputePago(tc.valorPago, tc.mensalidade); got != tc.want {
			t.Errorf("ComputePago(%v, %v) = %v, want %v", tc.valorPago, tc.mensalidade, got, tc.want)
		}
	}
}
