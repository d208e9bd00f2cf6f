package veiculo

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, v *Veiculo) error
	BuscarPorID(db *gorm.DB, id uint) (*Veiculo, error)
	ListarTodos(db *gorm.DB) ([]Veiculo, error)
	ListarPorSituacao(db *gorm.DB, situacao string) ([]Veiculo, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Veiculo) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, v *Veiculo) error {
	return db.Create(v).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Veiculo, error) {
	var v Veiculo
	err := db.First(&v, id).Error
	return &v, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Veiculo, error) {
	var lista []Veiculo
	err := db.Order("marca, modelo").Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) ListarPorSituacao(db *gorm.DB, situacao string) ([]Veiculo, error) {
	var lista []Veiculo
	err := db.Where("situacao = ?", situacao).Order("marca, modelo").Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Veiculo) error {
	var existente Veiculo
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Marca = novosDados.Marca
	existente.Modelo = novosDados.Modelo
	existente.AnoFabricacao = novosDados.AnoFabricacao
	existente.AnoModelo = novosDados.AnoModelo
	existente.Cor = novosDados.Cor
	existente.Combustivel = novosDados.Combustivel
	existente.Quilometragem = novosDados.Quilometragem
	existente.Placa = novosDados.Placa
	existente.Chassi = novosDados.Chassi
	existente.PrecoAnuncio = novosDados.PrecoAnuncio
	existente.Situacao = novosDados.Situacao

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Veiculo{}, id).Error
}
