package funcionario

import "gorm.io/gorm"

// Funcionario é o empregado da revenda que opera o sistema; os contratos
// gerados registram qual funcionário os emitiu.
type Funcionario struct {
	gorm.Model
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	CPF       string `json:"cpf" gorm:"size:14;unique"`
	Email     string `json:"email" gorm:"unique"`
	Telefone  string `json:"telefone"`
	Cargo     string `json:"cargo"` // "Vendedor", "Gerente"...
	Senha     string `json:"-"`
	IsAdmin   bool   `json:"isAdmin"`
}

// NomeCompleto concatena nome e sobrenome para exibição em contratos.
func (f *Funcionario) NomeCompleto() string {
	if f.Sobrenome == "" {
		return f.Nome
	}
	return f.Nome + " " + f.Sobrenome
}
