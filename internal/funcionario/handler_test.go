package funcionario

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RevendaPrime/api-revenda/internal/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Funcionario{}))
	return db
}

func rotasFuncionario(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/funcionarios/{id}/redefinir-senha", h.RedefinirSenha).Methods("POST")
	return r
}

func TestRedefinirSenhaTrocaParaSenhaTemporaria(t *testing.T) {
	db := setupTestDB(t)
	hash, err := utils.HashSenha("senha-antiga")
	require.NoError(t, err)
	f := Funcionario{Nome: "João", Sobrenome: "Pereira", Email: "joao@revendaprime.com.br", Senha: hash}
	require.NoError(t, db.Create(&f).Error)

	r := rotasFuncionario(NewHandler(db))
	req := httptest.NewRequest("POST", fmt.Sprintf("/funcionarios/%d/redefinir-senha", f.ID), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	temporaria := resp["senhaTemporaria"]
	assert.Len(t, temporaria, 12)

	var salvo Funcionario
	require.NoError(t, db.First(&salvo, f.ID).Error)
	assert.True(t, utils.VerificarSenha(salvo.Senha, temporaria),
		"a senha temporária devolvida deve corresponder ao hash persistido")
	assert.False(t, utils.VerificarSenha(salvo.Senha, "senha-antiga"),
		"a senha antiga deve deixar de valer")
}

func TestRedefinirSenhaFuncionarioInexistente(t *testing.T) {
	db := setupTestDB(t)

	r := rotasFuncionario(NewHandler(db))
	req := httptest.NewRequest("POST", "/funcionarios/999/redefinir-senha", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
