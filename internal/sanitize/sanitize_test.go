package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"short address", "fala@x.com"},
		{"address inside sentence", "entre em contato com joao.silva@empresa.com.br para detalhes"},
		{"address with plus tag", "suporte+cliente@dominio.org"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			assert.Contains(t, got, "[EMAIL]")
			assert.NotContains(t, got, "@")
		})
	}
}

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"mobile with area parens", "me liga no (11) 98765-4321"},
		{"mobile with country code", "+55 11 98765-4321"},
		{"landline without area", "telefone: 3456-7890"},
		{"dotted separator", "11 98765.4321"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			assert.Contains(t, got, "[TELEFONE]")
			assert.NotContains(t, got, "4321")
			assert.NotContains(t, got, "7890")
		})
	}
}

func TestSanitizeCPF(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"formatted", "meu cpf é 123.456.789-00"},
		{"unformatted", "cpf 12345678900 cadastrado"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			assert.Contains(t, got, "[CPF]")
			assert.NotContains(t, got, "789")
		})
	}
}

func TestSanitizeCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"formatted", "cnpj da empresa: 12.345.678/0001-99"},
		{"unformatted", "cnpj 12345678000199"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			assert.Contains(t, got, "[CNPJ]")
			assert.NotContains(t, got, "0001")
		})
	}
}

func TestSanitizeNoPIIIsNoOp(t *testing.T) {
	input := "bom dia, preciso de uma atualização sobre o chamado aberto ontem"
	assert.Equal(t, input, Sanitize(input))
}

func TestSanitizeIdempotent(t *testing.T) {
	once := Sanitize("fala@x.com ligue (11) 98765-4321 cpf 123.456.789-00 cnpj 12.345.678/0001-99")
	assert.Equal(t, once, Sanitize(once))
}
