package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	alfabetoSenha          = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	tamanhoSenhaTemporaria = 12
)

// HashSenha gera um hash bcrypt para a senha informada.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarSenha compara hash bcrypt com a senha em texto puro.
func VerificarSenha(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

// GerarSenhaTemporaria sorteia uma senha alfanumérica de uso único para o
// fluxo de redefinição de senha de funcionários.
func GerarSenhaTemporaria() (string, error) {
	senha := make([]byte, tamanhoSenhaTemporaria)
	limite := big.NewInt(int64(len(alfabetoSenha)))
	for i := range senha {
		n, err := rand.Int(rand.Reader, limite)
		if err != nil {
			return "", err
		}
		senha[i] = alfabetoSenha[n.Int64()]
	}
	return string(senha), nil
}
