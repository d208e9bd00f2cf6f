package contrato

// Termos agrupa os campos financeiros de uma variante. Cada variante tem
// sua própria struct, de forma que um contrato de venda não carrega campos
// de garantia por construção; a checagem em tempo de execução sobrevive
// apenas na borda HTTP, onde o payload chega sem tipo.
type Termos interface {
	Variante() Variante
	valorVenda() float64
}

// TermosVenda são os termos de um contrato de venda direta.
type TermosVenda struct {
	ValorVenda   float64
	VeiculoTroca *VeiculoTroca
}

func (t TermosVenda) Variante() Variante  { return VarianteVenda }
func (t TermosVenda) valorVenda() float64 { return t.ValorVenda }

// TermosConsignacao são os termos de um contrato de consignação.
type TermosConsignacao struct {
	ValorVenda   float64
	PrazoDias    *int
	TaxaComissao *float64
}

func (t TermosConsignacao) Variante() Variante  { return VarianteConsignacao }
func (t TermosConsignacao) valorVenda() float64 { return t.ValorVenda }

// TermosGarantia são os termos de um termo de garantia. Valor e defeito
// coberto podem ficar em aberto no rascunho; o envio para assinatura é que
// os exige preenchidos.
type TermosGarantia struct {
	ValorVenda     float64
	ValorGarantia  *float64
	DefeitoCoberto *string
}

func (t TermosGarantia) Variante() Variante  { return VarianteGarantia }
func (t TermosGarantia) valorVenda() float64 { return t.ValorVenda }

// aplicar grava os termos nos campos do contrato correspondente à variante.
func aplicarTermos(c *Contrato, t Termos) {
	c.ValorVenda = t.valorVenda()
	switch termos := t.(type) {
	case TermosVenda:
		c.VeiculoTroca = termos.VeiculoTroca
	case TermosConsignacao:
		c.PrazoConsignacaoDias = termos.PrazoDias
		c.TaxaComissao = termos.TaxaComissao
	case TermosGarantia:
		c.ValorGarantia = termos.ValorGarantia
		c.DefeitoCoberto = termos.DefeitoCoberto
	}
}
