package veiculo

import "gorm.io/gorm"

// Situações de estoque do veículo.
const (
	SituacaoDisponivel = "Disponível"
	SituacaoReservado  = "Reservado"
	SituacaoVendido    = "Vendido"
	SituacaoConsignado = "Consignado"
)

// Veiculo representa um item do estoque da revenda.
type Veiculo struct {
	gorm.Model
	Marca         string  `gorm:"size:100;not null" json:"marca"`
	Modelo        string  `gorm:"size:100;not null" json:"modelo"`
	AnoFabricacao int     `json:"anoFabricacao"`
	AnoModelo     int     `json:"anoModelo"`
	Cor           string  `gorm:"size:50" json:"cor"`
	Combustivel   string  `gorm:"size:30" json:"combustivel"` // Flex, Gasolina, Diesel, Elétrico...
	Quilometragem int     `json:"quilometragem"`
	Placa         string  `gorm:"size:10" json:"placa"` // vazia para zero-km sem emplacamento
	Chassi        string  `gorm:"size:30;unique" json:"chassi"`
	PrecoAnuncio  float64 `json:"precoAnuncio"`
	Situacao      string  `gorm:"size:30;not null;default:'Disponível';index" json:"situacao"`
}
