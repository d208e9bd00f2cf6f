package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func valorOuPadrao(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}

// Conectar abre a conexão Postgres com os parâmetros do ambiente.
// TranslateError fica ligado para que violações de unicidade cheguem como
// gorm.ErrDuplicatedKey, independente do driver.
func Conectar() (*gorm.DB, error) {
	host := valorOuPadrao("DB_HOST", "localhost")
	user := valorOuPadrao("DB_USER", "postgres")
	password := valorOuPadrao("DB_PASSWORD", "postgres")
	dbname := valorOuPadrao("DB_NAME", "revenda")
	port := valorOuPadrao("DB_PORT", "5432")

	var sslMode string
	if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
		sslMode = " sslmode=disable"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s%s",
		host, user, password, dbname, port, sslMode)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
}
