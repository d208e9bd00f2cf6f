package contrato

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RevendaPrime/api-revenda/internal/cliente"
	"github.com/RevendaPrime/api-revenda/internal/funcionario"
	"github.com/RevendaPrime/api-revenda/internal/veiculo"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAPI(t *testing.T) *mux.Router {
	return montarRotas(NewHandler(setupBanco(t), NovoCatalogo()))
}

func setupBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&cliente.Cliente{}, &veiculo.Veiculo{}, &funcionario.Funcionario{}, &Contrato{},
	))

	require.NoError(t, db.Create(&cliente.Cliente{
		Nome:      "Maria Silva",
		Documento: "123.456.789-00",
		Rua:       "Rua das Flores",
		Numero:    "100",
		Bairro:    "Centro",
		Cidade:    "São Paulo",
		UF:        "SP",
		CEP:       "01000-000",
		Telefone:  "(11) 98888-7777",
	}).Error)
	require.NoError(t, db.Create(&veiculo.Veiculo{
		Marca:         "Toyota",
		Modelo:        "Corolla",
		AnoFabricacao: 2022,
		AnoModelo:     2023,
		Cor:           "Prata",
		Combustivel:   "Flex",
		Quilometragem: 45000,
		Placa:         "ABC1D23",
		Chassi:        "9BWZZZ377VT004251",
		PrecoAnuncio:  164900,
	}).Error)
	require.NoError(t, db.Create(&funcionario.Funcionario{
		Nome:      "João",
		Sobrenome: "Pereira",
		CPF:       "987.654.321-00",
		Email:     "joao@revenda.com",
		Cargo:     "Vendedor",
	}).Error)

	return db
}

func montarRotas(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/contratos", h.GerarContrato).Methods("POST")
	r.HandleFunc("/contratos", h.ListarContratos).Methods("GET")
	r.HandleFunc("/contratos/{id}", h.BuscarPorID).Methods("GET")
	r.HandleFunc("/contratos/{id}", h.AtualizarContrato).Methods("PUT")
	r.HandleFunc("/contratos/{id}/enviar-assinatura", h.EnviarParaAssinatura).Methods("POST")
	r.HandleFunc("/contratos/{id}/assinar", h.RegistrarAssinatura).Methods("POST")
	r.HandleFunc("/contratos/{id}/cancelar", h.Cancelar).Methods("POST")
	r.HandleFunc("/contratos/{id}/retornar-rascunho", h.RetornarParaRascunho).Methods("POST")
	return r
}

func fazerRequisicao(t *testing.T, r *mux.Router, metodo, caminho string, corpo any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if corpo != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(corpo))
	}
	req := httptest.NewRequest(metodo, caminho, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func gerarVenda(t *testing.T, r *mux.Router) Contrato {
	rec := fazerRequisicao(t, r, "POST", "/contratos", map[string]any{
		"variante":      "Venda",
		"clienteId":     1,
		"veiculoId":     1,
		"funcionarioId": 1,
		"valorVenda":    159900.00,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var c Contrato
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&c))
	return c
}

// Cenário A: geração de contrato de venda.
func TestGerarContratoDeVendaFimAFim(t *testing.T) {
	r := setupAPI(t)
	c := gerarVenda(t, r)

	assert.Equal(t, StatusRascunho, c.Status)
	assert.Nil(t, c.AssinadoEm)

	modelos, _ := NovoCatalogo().ModelosPara(VarianteVenda)
	assert.Len(t, c.Clausulas, len(modelos))
	assert.Contains(t, c.Clausulas[0].Conteudo, "Maria Silva")
	assert.Contains(t, c.Clausulas[1].Conteudo, "Toyota")
	assert.Contains(t, c.Clausulas[2].Conteudo, "R$ 159.900,00")
}

// Cenário B: enviar para assinatura, assinar e tentar editar depois.
func TestAssinarEDepoisEditarFalha(t *testing.T) {
	r := setupAPI(t)
	c := gerarVenda(t, r)

	rec := fazerRequisicao(t, r, "POST", fmt.Sprintf("/contratos/%d/enviar-assinatura", c.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = fazerRequisicao(t, r, "POST", fmt.Sprintf("/contratos/%d/assinar", c.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var assinado Contrato
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&assinado))
	assert.Equal(t, StatusAssinado, assinado.Status)
	require.NotNil(t, assinado.AssinadoEm)

	obs := "tentativa de edição tardia"
	rec = fazerRequisicao(t, r, "PUT", fmt.Sprintf("/contratos/%d", c.ID), AtualizarContratoRequest{Observacoes: &obs})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// contrato permanece intacto
	rec = fazerRequisicao(t, r, "GET", fmt.Sprintf("/contratos/%d", c.ID), nil)
	var depois Contrato
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&depois))
	assert.Empty(t, depois.Observacoes)
	assert.Equal(t, StatusAssinado, depois.Status)
}

// Cenário C: garantia sem valorGarantia monta, mas não vai a assinatura.
func TestGarantiaIncompletaNaoVaiParaAssinatura(t *testing.T) {
	r := setupAPI(t)

	rec := fazerRequisicao(t, r, "POST", "/contratos", map[string]any{
		"variante":       "TermoGarantia",
		"clienteId":      1,
		"veiculoId":      1,
		"funcionarioId":  1,
		"valorVenda":     50000.00,
		"defeitoCoberto": "Câmbio automático",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var c Contrato
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&c))
	assert.Equal(t, StatusRascunho, c.Status)

	rec = fazerRequisicao(t, r, "POST", fmt.Sprintf("/contratos/%d/enviar-assinatura", c.ID), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "valorGarantia")
}

// Cenário D: cancelar rascunho e tentar enviar para assinatura.
func TestCancelarRascunhoBloqueiaEnvio(t *testing.T) {
	r := setupAPI(t)
	c := gerarVenda(t, r)

	rec := fazerRequisicao(t, r, "POST", fmt.Sprintf("/contratos/%d/cancelar", c.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = fazerRequisicao(t, r, "POST", fmt.Sprintf("/contratos/%d/enviar-assinatura", c.ID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGerarComClienteInexistente(t *testing.T) {
	r := setupAPI(t)

	rec := fazerRequisicao(t, r, "POST", "/contratos", map[string]any{
		"variante":      "Venda",
		"clienteId":     999,
		"veiculoId":     1,
		"funcionarioId": 1,
		"valorVenda":    100.0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGerarComVarianteDesconhecida(t *testing.T) {
	r := setupAPI(t)

	rec := fazerRequisicao(t, r, "POST", "/contratos", map[string]any{
		"variante":      "Aluguel",
		"clienteId":     1,
		"veiculoId":     1,
		"funcionarioId": 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVendaNaoAceitaCamposDeGarantia(t *testing.T) {
	r := setupAPI(t)

	rec := fazerRequisicao(t, r, "POST", "/contratos", map[string]any{
		"variante":      "Venda",
		"clienteId":     1,
		"veiculoId":     1,
		"funcionarioId": 1,
		"valorVenda":    100.0,
		"valorGarantia": 5000.0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "valorGarantia")
}

func TestEditarClausulaEmRascunho(t *testing.T) {
	r := setupAPI(t)
	c := gerarVenda(t, r)

	c.Clausulas[0].Conteudo = "texto ajustado a pedido do cliente"
	rec := fazerRequisicao(t, r, "PUT", fmt.Sprintf("/contratos/%d", c.ID),
		AtualizarContratoRequest{Clausulas: c.Clausulas})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var editado Contrato
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&editado))
	assert.Equal(t, "texto ajustado a pedido do cliente", editado.Clausulas[0].Conteudo)
}

func TestListarContratosComFiltroDeStatus(t *testing.T) {
	r := setupAPI(t)
	c := gerarVenda(t, r)
	_ = gerarVenda(t, r)

	fazerRequisicao(t, r, "POST", fmt.Sprintf("/contratos/%d/cancelar", c.ID), nil)

	rec := fazerRequisicao(t, r, "GET", "/contratos?status=Rascunho", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var lista []Contrato
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&lista))
	require.Len(t, lista, 1)
	assert.Equal(t, StatusRascunho, lista[0].Status)
}

func TestRetornarParaRascunhoPermiteNovaEdicao(t *testing.T) {
	r := setupAPI(t)
	c := gerarVenda(t, r)

	rec := fazerRequisicao(t, r, "POST", fmt.Sprintf("/contratos/%d/enviar-assinatura", c.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = fazerRequisicao(t, r, "POST", fmt.Sprintf("/contratos/%d/retornar-rascunho", c.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var devolvido Contrato
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&devolvido))
	assert.Equal(t, StatusRascunho, devolvido.Status)
	assert.Nil(t, devolvido.AssinadoEm)
}

// Repositório cuja criação sempre colide no número do contrato.
type repositorioComColisao struct {
	Repository
	criacoes int
}

func (r *repositorioComColisao) Criar(db *gorm.DB, c *Contrato) error {
	r.criacoes++
	return ErrNumeroDuplicado
}

func TestGeracaoEsgotaTentativasComColisaoPersistente(t *testing.T) {
	h := NewHandler(setupBanco(t), NovoCatalogo())
	repo := &repositorioComColisao{Repository: h.Repository}
	h.Repository = repo
	r := montarRotas(h)

	rec := fazerRequisicao(t, r, "POST", "/contratos", map[string]any{
		"variante":      "Venda",
		"clienteId":     1,
		"veiculoId":     1,
		"funcionarioId": 1,
		"valorVenda":    159900.00,
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 3, repo.criacoes, "deve desistir após esgotar as tentativas de número único")
}

// Repositório que simula indisponibilidade do banco nas buscas.
type repositorioIndisponivel struct {
	Repository
}

func (r *repositorioIndisponivel) BuscarPorID(db *gorm.DB, id uint) (*Contrato, error) {
	return nil, errors.New("conexão com o banco recusada")
}

func TestFalhaDeInfraestruturaNaoViraNaoEncontrado(t *testing.T) {
	h := NewHandler(setupBanco(t), NovoCatalogo())
	h.Repository = &repositorioIndisponivel{Repository: h.Repository}
	r := montarRotas(h)

	rec := fazerRequisicao(t, r, "GET", "/contratos/1", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	obs := "nova observação"
	rec = fazerRequisicao(t, r, "PUT", "/contratos/1", AtualizarContratoRequest{Observacoes: &obs})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = fazerRequisicao(t, r, "POST", "/contratos/1/assinar", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestBuscarContratoInexistente(t *testing.T) {
	r := setupAPI(t)

	rec := fazerRequisicao(t, r, "GET", "/contratos/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
