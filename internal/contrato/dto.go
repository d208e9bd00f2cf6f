package contrato

// GerarContratoRequest é o payload de geração. Chega sem tipo da borda
// HTTP carregando a união dos campos de todas as variantes; a conversão
// para Termos rejeita campos alheios à variante escolhida, para que um
// contrato de venda nunca carregue campos de garantia como autoritativos.
type GerarContratoRequest struct {
	Variante      Variante `json:"variante"`
	ClienteID     uint     `json:"clienteId"`
	VeiculoID     uint     `json:"veiculoId"`
	FuncionarioID uint     `json:"funcionarioId"`
	Observacoes   string   `json:"observacoes"`

	ValorVenda           float64       `json:"valorVenda"`
	ValorGarantia        *float64      `json:"valorGarantia,omitempty"`
	DefeitoCoberto       *string       `json:"defeitoCoberto,omitempty"`
	PrazoConsignacaoDias *int          `json:"prazoConsignacaoDias,omitempty"`
	TaxaComissao         *float64      `json:"taxaComissao,omitempty"`
	VeiculoTroca         *VeiculoTroca `json:"veiculoTroca,omitempty"`
}

// ParaTermos valida a consistência estrutural do payload com a variante e
// devolve os termos tipados.
func (req *GerarContratoRequest) ParaTermos() (Termos, error) {
	if !req.Variante.Valida() {
		return nil, ErrVarianteDesconhecida
	}
	if req.ValorVenda < 0 {
		return nil, &ErroCamposVariante{Variante: req.Variante, Campos: []string{"valorVenda"}}
	}
	if campos := req.camposAlheios(); len(campos) > 0 {
		return nil, &ErroCamposVariante{Variante: req.Variante, Campos: campos}
	}

	switch req.Variante {
	case VarianteVenda:
		return TermosVenda{ValorVenda: req.ValorVenda, VeiculoTroca: req.VeiculoTroca}, nil
	case VarianteConsignacao:
		return TermosConsignacao{
			ValorVenda:   req.ValorVenda,
			PrazoDias:    req.PrazoConsignacaoDias,
			TaxaComissao: req.TaxaComissao,
		}, nil
	case VarianteGarantia:
		return TermosGarantia{
			ValorVenda:     req.ValorVenda,
			ValorGarantia:  req.ValorGarantia,
			DefeitoCoberto: req.DefeitoCoberto,
		}, nil
	}
	return nil, ErrVarianteDesconhecida
}

// camposAlheios lista campos presentes no payload que não pertencem à
// variante escolhida.
func (req *GerarContratoRequest) camposAlheios() []string {
	var campos []string
	if req.Variante != VarianteGarantia {
		if req.ValorGarantia != nil {
			campos = append(campos, "valorGarantia")
		}
		if req.DefeitoCoberto != nil {
			campos = append(campos, "defeitoCoberto")
		}
	}
	if req.Variante != VarianteConsignacao {
		if req.PrazoConsignacaoDias != nil {
			campos = append(campos, "prazoConsignacaoDias")
		}
		if req.TaxaComissao != nil {
			campos = append(campos, "taxaComissao")
		}
	}
	if req.Variante != VarianteVenda && req.VeiculoTroca != nil {
		campos = append(campos, "veiculoTroca")
	}
	return campos
}

// AtualizarContratoRequest edita campos livres do contrato enquanto ele
// não está assinado nem cancelado. Campos nulos ficam como estão.
type AtualizarContratoRequest struct {
	Clausulas   []Clausula `json:"clausulas,omitempty"`
	Observacoes *string    `json:"observacoes,omitempty"`

	ValorVenda           *float64      `json:"valorVenda,omitempty"`
	ValorGarantia        *float64      `json:"valorGarantia,omitempty"`
	DefeitoCoberto       *string       `json:"defeitoCoberto,omitempty"`
	PrazoConsignacaoDias *int          `json:"prazoConsignacaoDias,omitempty"`
	TaxaComissao         *float64      `json:"taxaComissao,omitempty"`
	VeiculoTroca         *VeiculoTroca `json:"veiculoTroca,omitempty"`
}

// camposAlheios lista campos de edição que não pertencem à variante do
// contrato alvo.
func (req *AtualizarContratoRequest) camposAlheios(v Variante) []string {
	var campos []string
	if v != VarianteGarantia {
		if req.ValorGarantia != nil {
			campos = append(campos, "valorGarantia")
		}
		if req.DefeitoCoberto != nil {
			campos = append(campos, "defeitoCoberto")
		}
	}
	if v != VarianteConsignacao {
		if req.PrazoConsignacaoDias != nil {
			campos = append(campos, "prazoConsignacaoDias")
		}
		if req.TaxaComissao != nil {
			campos = append(campos, "taxaComissao")
		}
	}
	if v != VarianteVenda && req.VeiculoTroca != nil {
		campos = append(campos, "veiculoTroca")
	}
	return campos
}

// aplicar grava as edições no contrato em memória.
func (req *AtualizarContratoRequest) aplicar(c *Contrato) {
	if req.Clausulas != nil {
		c.Clausulas = req.Clausulas
	}
	if req.Observacoes != nil {
		c.Observacoes = *req.Observacoes
	}
	if req.ValorVenda != nil {
		c.ValorVenda = *req.ValorVenda
	}
	if req.ValorGarantia != nil {
		c.ValorGarantia = req.ValorGarantia
	}
	if req.DefeitoCoberto != nil {
		c.DefeitoCoberto = req.DefeitoCoberto
	}
	if req.PrazoConsignacaoDias != nil {
		c.PrazoConsignacaoDias = req.PrazoConsignacaoDias
	}
	if req.TaxaComissao != nil {
		c.TaxaComissao = req.TaxaComissao
	}
	if req.VeiculoTroca != nil {
		c.VeiculoTroca = req.VeiculoTroca
	}
}
