package contrato

import (
	"time"

	"gorm.io/gorm"
)

// Variante identifica o tipo do contrato e define o modelo de cláusulas
// e os campos financeiros obrigatórios.
type Variante string

const (
	VarianteVenda       Variante = "Venda"
	VarianteConsignacao Variante = "Consignacao"
	VarianteGarantia    Variante = "TermoGarantia"
)

// Valida indica se o valor pertence ao conjunto fechado de variantes.
func (v Variante) Valida() bool {
	switch v {
	case VarianteVenda, VarianteConsignacao, VarianteGarantia:
		return true
	}
	return false
}

// Tag é o prefixo usado no número do contrato (ex: VEN-2026-000123).
func (v Variante) Tag() string {
	switch v {
	case VarianteVenda:
		return "VEN"
	case VarianteConsignacao:
		return "CSG"
	case VarianteGarantia:
		return "GAR"
	}
	return "CTR"
}

// Status do ciclo de vida do contrato.
type Status string

const (
	StatusRascunho   Status = "Rascunho"
	StatusAguardando Status = "AguardandoAssinatura"
	StatusAssinado   Status = "Assinado"
	StatusCancelado  Status = "Cancelado"
)

// Terminal indica se nenhuma transição é permitida a partir deste status.
func (s Status) Terminal() bool {
	return s == StatusAssinado || s == StatusCancelado
}

// Clausula é uma seção numerada do contrato, materializada a partir do
// modelo no momento da geração. Depois de materializada ela é independente
// do modelo: editar o texto não afeta outros contratos.
type Clausula struct {
	Ordinal  int    `json:"ordinal"`
	Titulo   string `json:"titulo"`
	Conteudo string `json:"conteudo"`
}

// VeiculoTroca é o retrato do veículo dado como parte de pagamento em um
// contrato de venda, capturado no momento da geração.
type VeiculoTroca struct {
	Marca     string  `json:"marca"`
	Modelo    string  `json:"modelo"`
	Ano       int     `json:"ano"`
	Placa     string  `json:"placa"`
	Avaliacao float64 `json:"avaliacao"`
}

// Contrato representa o documento gerado para uma venda, consignação ou
// termo de garantia. As cláusulas já substituídas ficam gravadas em JSONB
// junto com o registro.
type Contrato struct {
	gorm.Model

	Numero   string   `gorm:"size:20;not null;uniqueIndex" json:"numero"`
	Variante Variante `gorm:"size:30;not null;index" json:"variante"`

	ClienteID     uint `gorm:"not null;index" json:"clienteId"`
	VeiculoID     uint `gorm:"not null;index" json:"veiculoId"`
	FuncionarioID uint `gorm:"not null;index" json:"funcionarioId"`

	// Retrato para exibição em listagens, capturado na geração.
	NomeCliente  string `gorm:"size:255" json:"nomeCliente"`
	MarcaVeiculo string `gorm:"size:100" json:"marcaVeiculo"`
	DescVeiculo  string `gorm:"size:255" json:"descVeiculo"`

	ValorVenda float64 `gorm:"not null" json:"valorVenda"`

	// Campos exclusivos do TermoGarantia.
	ValorGarantia  *float64 `json:"valorGarantia,omitempty"`
	DefeitoCoberto *string  `gorm:"size:500" json:"defeitoCoberto,omitempty"`

	// Campos exclusivos da Consignacao.
	PrazoConsignacaoDias *int     `json:"prazoConsignacaoDias,omitempty"`
	TaxaComissao         *float64 `json:"taxaComissao,omitempty"`

	// Exclusivo da Venda, opcional.
	VeiculoTroca *VeiculoTroca `gorm:"type:jsonb;serializer:json" json:"veiculoTroca,omitempty"`

	Status      Status     `gorm:"size:30;not null;default:'Rascunho';index" json:"status"`
	Clausulas   []Clausula `gorm:"type:jsonb;serializer:json" json:"clausulas"`
	Observacoes string     `json:"observacoes"`
	AssinadoEm  *time.Time `json:"assinadoEm,omitempty"`
}

// CamposObrigatoriosAusentes lista os campos exigidos pela variante que
// ainda não foram preenchidos. A lista vazia libera o envio para assinatura.
func (c *Contrato) CamposObrigatoriosAusentes() []string {
	var ausentes []string
	switch c.Variante {
	case VarianteGarantia:
		if c.ValorGarantia == nil {
			ausentes = append(ausentes, "valorGarantia")
		}
		if c.DefeitoCoberto == nil || *c.DefeitoCoberto == "" {
			ausentes = append(ausentes, "defeitoCoberto")
		}
	case VarianteConsignacao:
		if c.PrazoConsignacaoDias == nil {
			ausentes = append(ausentes, "prazoConsignacaoDias")
		}
		if c.TaxaComissao == nil {
			ausentes = append(ausentes, "taxaComissao")
		}
	}
	return ausentes
}

// Editavel indica se cláusulas, observações e campos financeiros ainda
// podem ser alterados.
func (c *Contrato) Editavel() bool {
	return !c.Status.Terminal()
}
