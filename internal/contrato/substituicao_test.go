package contrato

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextoCompleto() *ContextoSubstituicao {
	valorGarantia := 5000.0
	defeito := "Câmbio automático"
	taxa := 7.5
	prazo := 60
	return &ContextoSubstituicao{
		Cliente: DadosCliente{
			Nome:      "Maria Silva",
			Documento: "123.456.789-00",
			Endereco:  "Rua das Flores, 100, Centro, São Paulo/SP, CEP 01000-000",
			Telefone:  "(11) 98888-7777",
		},
		Veiculo: DadosVeiculo{
			Marca:       "Toyota",
			Modelo:      "Corolla",
			Cor:         "Prata",
			Combustivel: "Flex",
			Ano:         2023,
			Quilometros: 45000,
			Placa:       "ABC1D23",
			Chassi:      "9BWZZZ377VT004251",
		},
		Funcionario:      DadosFuncionario{Nome: "João Pereira"},
		ValorVenda:       159900.00,
		ValorGarantia:    &valorGarantia,
		DefeitoCoberto:   &defeito,
		TaxaComissao:     &taxa,
		PrazoConsignacao: &prazo,
		Agora:            time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
	}
}

func TestRenderizarSubstituiTokensBasicos(t *testing.T) {
	ctx := contextoCompleto()
	saida := Renderizar("Contrato de [NOME_CLIENTE], veículo [MARCA_VEICULO] [MODELO_VEICULO].", ctx)
	assert.Equal(t, "Contrato de Maria Silva, veículo Toyota Corolla.", saida)
}

func TestRenderizarFormataMoedaEmPTBR(t *testing.T) {
	ctx := contextoCompleto()
	saida := Renderizar("valor total de [VALOR_VENDA]", ctx)
	assert.Equal(t, "valor total de R$ 159.900,00", saida)
}

func TestRenderizarFormataData(t *testing.T) {
	ctx := contextoCompleto()
	assert.Equal(t, "firmado em 31/08/2026", Renderizar("firmado em [DATA_ATUAL]", ctx))
}

func TestRenderizarFormataQuilometragem(t *testing.T) {
	ctx := contextoCompleto()
	assert.Equal(t, "com 45.000 km", Renderizar("com [KM_VEICULO] km", ctx))
}

// Todo token presente em qualquer modelo registrado precisa resolver com
// contexto completo: nenhum colchete pode sobrar no texto final.
func TestCoberturaDeTokensEmTodosOsModelos(t *testing.T) {
	cat := NovoCatalogo()
	ctx := contextoCompleto()

	for _, variante := range []Variante{VarianteVenda, VarianteConsignacao, VarianteGarantia} {
		modelos, err := cat.ModelosPara(variante)
		require.NoError(t, err)
		for _, modelo := range modelos {
			saida := Renderizar(modelo.Corpo, ctx)
			assert.NotContains(t, saida, "[", "token não resolvido em %s/%s", variante, modelo.ID)
			assert.NotContains(t, saida, "]", "token não resolvido em %s/%s", variante, modelo.ID)
		}
	}
}

func TestCampoAusenteRendeVazioSemFalhar(t *testing.T) {
	ctx := contextoCompleto()
	ctx.Veiculo.Placa = "" // zero-km ainda sem emplacamento
	ctx.ValorGarantia = nil
	ctx.DefeitoCoberto = nil

	saida := Renderizar("placa [PLACA_VEICULO], garantia de [VALOR_GARANTIA].", ctx)
	assert.Equal(t, "placa , garantia de .", saida)
}

func TestTokenDesconhecidoRendeVazio(t *testing.T) {
	ctx := contextoCompleto()
	assert.Equal(t, "antes  depois", Renderizar("antes [TOKEN_INEXISTENTE] depois", ctx))
}

func TestColchetesEmTextoLivreSobrevivem(t *testing.T) {
	ctx := contextoCompleto()
	// minúsculas e espaços não formam nome de token
	assert.Equal(t, "ver [anexo 2] do contrato", Renderizar("ver [anexo 2] do contrato", ctx))
	assert.Equal(t, "colchete solto [ sem fechar", Renderizar("colchete solto [ sem fechar", ctx))
}

func TestValorSubstituidoNaoEReexaminado(t *testing.T) {
	ctx := contextoCompleto()
	// valor do campo contém sequência com cara de token
	ctx.Cliente.Nome = "[VALOR_VENDA]"
	saida := Renderizar("cliente: [NOME_CLIENTE]", ctx)
	assert.Equal(t, "cliente: [VALOR_VENDA]", saida)
	assert.NotContains(t, saida, "R$")
}

func TestComparacaoDeTokenESensivelAMaiusculas(t *testing.T) {
	ctx := contextoCompleto()
	assert.Equal(t, "x [nome_cliente] x", Renderizar("x [nome_cliente] x", ctx))
}

func TestFormatarMoedaSemFracao(t *testing.T) {
	assert.Equal(t, "R$ 1.500,00", FormatarMoeda(1500))
	assert.True(t, strings.HasPrefix(FormatarMoeda(0), "R$"))
}
