package cliente

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnderecoCompleto(t *testing.T) {
	c := Cliente{
		Rua:    "Rua das Flores",
		Numero: "100",
		Bairro: "Centro",
		Cidade: "São Paulo",
		UF:     "SP",
		CEP:    "01000-000",
	}
	assert.Equal(t, "Rua das Flores, 100, Centro, São Paulo/SP, CEP 01000-000", c.EnderecoCompleto())
}

func TestEnderecoCompletoOmitePartesVazias(t *testing.T) {
	c := Cliente{Cidade: "Campinas", UF: "SP"}
	assert.Equal(t, "Campinas/SP", c.EnderecoCompleto())

	vazio := Cliente{}
	assert.Equal(t, "", vazio.EnderecoCompleto())
}
