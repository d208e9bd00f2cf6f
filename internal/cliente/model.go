package cliente

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Cliente representa um comprador ou consignante da revenda.
type Cliente struct {
	gorm.Model
	Nome      string `json:"nome"`
	Documento string `json:"documento" gorm:"size:20;unique"` // CPF ou CNPJ
	Rua       string `json:"rua"`
	Numero    string `json:"numero"`
	Bairro    string `json:"bairro"`
	Cidade    string `json:"cidade"`
	UF        string `json:"uf" gorm:"size:2"`
	CEP       string `json:"cep" gorm:"size:10"`
	Telefone  string `json:"telefone"`
	Email     string `json:"email"`
}

// EnderecoCompleto compõe o endereço em linha única para uso em contratos.
// Partes vazias são omitidas.
func (c *Cliente) EnderecoCompleto() string {
	var partes []string
	if c.Rua != "" {
		rua := c.Rua
		if c.Numero != "" {
			rua += ", " + c.Numero
		}
		partes = append(partes, rua)
	}
	if c.Bairro != "" {
		partes = append(partes, c.Bairro)
	}
	if c.Cidade != "" {
		cidade := c.Cidade
		if c.UF != "" {
			cidade += "/" + c.UF
		}
		partes = append(partes, cidade)
	}
	if c.CEP != "" {
		partes = append(partes, fmt.Sprintf("CEP %s", c.CEP))
	}
	return strings.Join(partes, ", ")
}
