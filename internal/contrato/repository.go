package contrato

import (
	"errors"

	"gorm.io/gorm"
)

// Filtros restringe a listagem de contratos. Campos vazios não filtram.
type Filtros struct {
	Status   Status
	Variante Variante
	// Busca busca texto livre em número, nome do cliente e marca do veículo.
	Busca string
}

type Repository interface {
	Criar(db *gorm.DB, c *Contrato) error
	BuscarPorID(db *gorm.DB, id uint) (*Contrato, error)
	Listar(db *gorm.DB, f Filtros) ([]Contrato, error)
	Atualizar(db *gorm.DB, c *Contrato) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Contrato) error {
	err := db.Create(c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrNumeroDuplicado
	}
	return err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Contrato, error) {
	var c Contrato
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) Listar(db *gorm.DB, f Filtros) ([]Contrato, error) {
	consulta := db.Model(&Contrato{})
	if f.Status != "" {
		consulta = consulta.Where("status = ?", f.Status)
	}
	if f.Variante != "" {
		consulta = consulta.Where("variante = ?", f.Variante)
	}
	if f.Busca != "" {
		padrao := "%" + f.Busca + "%"
		consulta = consulta.Where(
			"numero LIKE ? OR nome_cliente LIKE ? OR marca_veiculo LIKE ?",
			padrao, padrao, padrao,
		)
	}
	var lista []Contrato
	err := consulta.Order("created_at DESC").Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Contrato) error {
	return db.Save(c).Error
}
