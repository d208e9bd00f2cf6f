package funcionario

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, f *Funcionario) error
	BuscarPorID(db *gorm.DB, id uint) (*Funcionario, error)
	BuscarPorEmail(db *gorm.DB, email string) (*Funcionario, error)
	ListarTodos(db *gorm.DB) ([]Funcionario, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Funcionario) error
	AtualizarSenha(db *gorm.DB, id uint, hash string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, f *Funcionario) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Funcionario, error) {
	var f Funcionario
	err := db.First(&f, id).Error
	return &f, err
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Funcionario, error) {
	var f Funcionario
	err := db.Where("email = ?", email).First(&f).Error
	return &f, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Funcionario, error) {
	var lista []Funcionario
	err := db.Order("nome").Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Funcionario) error {
	var existente Funcionario
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Sobrenome = novosDados.Sobrenome
	existente.CPF = novosDados.CPF
	existente.Email = novosDados.Email
	existente.Telefone = novosDados.Telefone
	existente.Cargo = novosDados.Cargo

	return db.Save(&existente).Error
}

func (r *repositoryImpl) AtualizarSenha(db *gorm.DB, id uint, hash string) error {
	return db.Model(&Funcionario{}).Where("id = ?", id).Update("senha", hash).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Funcionario{}, id).Error
}
