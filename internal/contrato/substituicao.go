package contrato

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DadosCliente é o retrato de cliente consumido na geração do contrato.
type DadosCliente struct {
	Nome      string
	Documento string
	Endereco  string
	Telefone  string
}

// DadosVeiculo é o retrato de veículo consumido na geração do contrato.
type DadosVeiculo struct {
	Marca       string
	Modelo      string
	Cor         string
	Combustivel string
	Ano         int
	Quilometros int
	Placa       string
	Chassi      string
}

// DadosFuncionario é o retrato do funcionário que gera o contrato.
type DadosFuncionario struct {
	Nome string
}

// ContextoSubstituicao é a sacola somente-leitura de valores disponível
// para os tokens, montada pelo montador a cada geração.
type ContextoSubstituicao struct {
	Cliente     DadosCliente
	Veiculo     DadosVeiculo
	Funcionario DadosFuncionario

	ValorVenda       float64
	ValorGarantia    *float64
	DefeitoCoberto   *string
	TaxaComissao     *float64
	PrazoConsignacao *int

	Agora time.Time
}

var impressoraPTBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatarMoeda aplica o formato monetário pt-BR com duas casas decimais
// e separador de milhar (ex: R$ 159.900,00).
func FormatarMoeda(valor float64) string {
	return impressoraPTBR.Sprintf("R$ %v", number.Decimal(valor, number.Scale(2)))
}

func formatarPercentual(valor float64) string {
	return impressoraPTBR.Sprintf("%v", number.Decimal(valor, number.Scale(2)))
}

func formatarData(t time.Time) string {
	return t.Format("02/01/2006")
}

// tabelaTokens mapeia cada token reconhecido ao valor formatado no
// contexto. Valores ausentes rendem string vazia; ausência é um estado de
// negócio válido (ex: veículo ainda sem placa).
var tabelaTokens = map[string]func(*ContextoSubstituicao) string{
	"NOME_CLIENTE":      func(c *ContextoSubstituicao) string { return c.Cliente.Nome },
	"DOCUMENTO_CLIENTE": func(c *ContextoSubstituicao) string { return c.Cliente.Documento },
	"ENDERECO_CLIENTE":  func(c *ContextoSubstituicao) string { return c.Cliente.Endereco },
	"TELEFONE_CLIENTE":  func(c *ContextoSubstituicao) string { return c.Cliente.Telefone },
	"NOME_VENDEDOR":     func(c *ContextoSubstituicao) string { return c.Funcionario.Nome },
	"MARCA_VEICULO":     func(c *ContextoSubstituicao) string { return c.Veiculo.Marca },
	"MODELO_VEICULO":    func(c *ContextoSubstituicao) string { return c.Veiculo.Modelo },
	"COR_VEICULO":       func(c *ContextoSubstituicao) string { return c.Veiculo.Cor },
	"COMBUSTIVEL_VEICULO": func(c *ContextoSubstituicao) string {
		return c.Veiculo.Combustivel
	},
	"ANO_VEICULO": func(c *ContextoSubstituicao) string {
		if c.Veiculo.Ano == 0 {
			return ""
		}
		return strconv.Itoa(c.Veiculo.Ano)
	},
	"KM_VEICULO": func(c *ContextoSubstituicao) string {
		return impressoraPTBR.Sprintf("%v", number.Decimal(c.Veiculo.Quilometros))
	},
	"PLACA_VEICULO":  func(c *ContextoSubstituicao) string { return c.Veiculo.Placa },
	"CHASSI_VEICULO": func(c *ContextoSubstituicao) string { return c.Veiculo.Chassi },
	"VALOR_VENDA":    func(c *ContextoSubstituicao) string { return FormatarMoeda(c.ValorVenda) },
	"VALOR_GARANTIA": func(c *ContextoSubstituicao) string {
		if c.ValorGarantia == nil {
			return ""
		}
		return FormatarMoeda(*c.ValorGarantia)
	},
	"DEFEITO_COBERTO": func(c *ContextoSubstituicao) string {
		if c.DefeitoCoberto == nil {
			return ""
		}
		return *c.DefeitoCoberto
	},
	"TAXA_COMISSAO": func(c *ContextoSubstituicao) string {
		if c.TaxaComissao == nil {
			return ""
		}
		return formatarPercentual(*c.TaxaComissao)
	},
	"PRAZO_CONSIGNACAO": func(c *ContextoSubstituicao) string {
		if c.PrazoConsignacao == nil {
			return ""
		}
		return strconv.Itoa(*c.PrazoConsignacao)
	},
	"DATA_ATUAL": func(c *ContextoSubstituicao) string { return formatarData(c.Agora) },
}

// Renderizar substitui em uma única passada todos os tokens do corpo pelos
// valores do contexto. Tokens desconhecidos rendem string vazia; o valor
// substituído nunca é re-examinado, então texto livre contendo colchetes
// não dispara substituição em cascata.
func Renderizar(corpo string, ctx *ContextoSubstituicao) string {
	var b strings.Builder
	b.Grow(len(corpo))

	for i := 0; i < len(corpo); {
		if corpo[i] != '[' {
			b.WriteByte(corpo[i])
			i++
			continue
		}
		fim := strings.IndexByte(corpo[i+1:], ']')
		if fim < 0 {
			b.WriteString(corpo[i:])
			break
		}
		nome := corpo[i+1 : i+1+fim]
		if !nomeDeToken(nome) {
			// Colchete em texto livre, não é token: passa adiante.
			b.WriteByte('[')
			i++
			continue
		}
		if valor, ok := tabelaTokens[nome]; ok {
			b.WriteString(valor(ctx))
		}
		i += fim + 2
	}
	return b.String()
}

// nomeDeToken aceita apenas sequências não vazias de A-Z, 0-9 e sublinhado;
// a comparação com a tabela é sensível a maiúsculas e exata.
func nomeDeToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if (ch < 'A' || ch > 'Z') && (ch < '0' || ch > '9') && ch != '_' {
			return false
		}
	}
	return true
}
