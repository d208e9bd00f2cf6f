package contrato

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/RevendaPrime/api-revenda/internal/auth"
	"github.com/RevendaPrime/api-revenda/internal/cliente"
	"github.com/RevendaPrime/api-revenda/internal/funcionario"
	"github.com/RevendaPrime/api-revenda/internal/notificacao"
	"github.com/RevendaPrime/api-revenda/internal/veiculo"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// tentativasGeracao limita as repetições quando o número do contrato
// colide com um já existente.
const tentativasGeracao = 3

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Montador   *Montador

	Clientes     cliente.Repository
	Veiculos     veiculo.Repository
	Funcionarios funcionario.Repository
}

func NewHandler(db *gorm.DB, cat *Catalogo) *Handler {
	return &Handler{
		DB:           db,
		Repository:   NewRepository(),
		Montador:     NovoMontador(cat),
		Clientes:     cliente.NewRepository(),
		Veiculos:     veiculo.NewRepository(),
		Funcionarios: funcionario.NewRepository(),
	}
}

// POST /contratos
func (h *Handler) GerarContrato(w http.ResponseWriter, r *http.Request) {
	var req GerarContratoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	// Sem funcionário explícito, usa o funcionário autenticado.
	if req.FuncionarioID == 0 {
		if id, ok := r.Context().Value(auth.CtxFuncionarioID).(uint); ok {
			req.FuncionarioID = id
		}
	}

	termos, err := req.ParaTermos()
	if err != nil {
		responderErro(w, err)
		return
	}

	dadosCliente, dadosVeiculo, dadosFuncionario, err := h.resolverReferencias(&req)
	if err != nil {
		responderErro(w, err)
		return
	}

	c, err := h.Montador.Montar(
		req.Variante,
		dadosCliente, dadosVeiculo, dadosFuncionario,
		termos, req.Observacoes,
		req.ClienteID, req.VeiculoID, req.FuncionarioID,
	)
	if err != nil {
		responderErro(w, err)
		return
	}

	err = h.Repository.Criar(h.DB, c)
	for tentativa := 1; errors.Is(err, ErrNumeroDuplicado) && tentativa < tentativasGeracao; tentativa++ {
		h.Montador.RenovarNumero(c)
		err = h.Repository.Criar(h.DB, c)
	}
	if errors.Is(err, ErrNumeroDuplicado) {
		responderErro(w, ErrGeracaoFalhou)
		return
	}
	if err != nil {
		http.Error(w, "erro ao salvar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// resolverReferencias busca os retratos de cliente, veículo e funcionário.
// Qualquer registro inexistente vira ErrReferenciaAusente.
func (h *Handler) resolverReferencias(req *GerarContratoRequest) (*DadosCliente, *DadosVeiculo, *DadosFuncionario, error) {
	cli, err := h.Clientes.BuscarPorID(h.DB, req.ClienteID)
	if err != nil {
		return nil, nil, nil, referenciaOuErro(err)
	}
	vei, err := h.Veiculos.BuscarPorID(h.DB, req.VeiculoID)
	if err != nil {
		return nil, nil, nil, referenciaOuErro(err)
	}
	fun, err := h.Funcionarios.BuscarPorID(h.DB, req.FuncionarioID)
	if err != nil {
		return nil, nil, nil, referenciaOuErro(err)
	}

	dadosCliente := &DadosCliente{
		Nome:      cli.Nome,
		Documento: cli.Documento,
		Endereco:  cli.EnderecoCompleto(),
		Telefone:  cli.Telefone,
	}
	dadosVeiculo := &DadosVeiculo{
		Marca:       vei.Marca,
		Modelo:      vei.Modelo,
		Cor:         vei.Cor,
		Combustivel: vei.Combustivel,
		Ano:         vei.AnoModelo,
		Quilometros: vei.Quilometragem,
		Placa:       vei.Placa,
		Chassi:      vei.Chassi,
	}
	dadosFuncionario := &DadosFuncionario{Nome: fun.NomeCompleto()}
	return dadosCliente, dadosVeiculo, dadosFuncionario, nil
}

func referenciaOuErro(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrReferenciaAusente
	}
	return err
}

// carregarContrato busca o contrato pelo ID distinguindo inexistência de
// falha de infraestrutura; a resposta já é escrita nos casos de erro.
func (h *Handler) carregarContrato(w http.ResponseWriter, id uint) (*Contrato, bool) {
	c, err := h.Repository.BuscarPorID(h.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		http.Error(w, "erro ao buscar contrato", http.StatusInternalServerError)
		return nil, false
	}
	return c, true
}

// GET /contratos?status=...&variante=...&busca=...
func (h *Handler) ListarContratos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filtros := Filtros{
		Status:   Status(q.Get("status")),
		Variante: Variante(q.Get("variante")),
		Busca:    q.Get("busca"),
	}
	lista, err := h.Repository.Listar(h.DB, filtros)
	if err != nil {
		http.Error(w, "erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(lista)
}

// GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, ok := h.carregarContrato(w, uint(id))
	if !ok {
		return
	}
	json.NewEncoder(w).Encode(c)
}

// PUT /contratos/{id}
func (h *Handler) AtualizarContrato(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req AtualizarContratoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	c, ok := h.carregarContrato(w, uint(id))
	if !ok {
		return
	}
	if err := VerificarEditavel(c); err != nil {
		responderErro(w, err)
		return
	}
	if campos := req.camposAlheios(c.Variante); len(campos) > 0 {
		responderErro(w, &ErroCamposVariante{Variante: c.Variante, Campos: campos})
		return
	}
	if req.ValorVenda != nil && *req.ValorVenda < 0 {
		responderErro(w, &ErroCamposVariante{Variante: c.Variante, Campos: []string{"valorVenda"}})
		return
	}

	req.aplicar(c)
	if err := h.Repository.Atualizar(h.DB, c); err != nil {
		http.Error(w, "erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// POST /contratos/{id}/enviar-assinatura
func (h *Handler) EnviarParaAssinatura(w http.ResponseWriter, r *http.Request) {
	h.aplicarTransicao(w, r, EventoEnviarParaAssinatura)
}

// POST /contratos/{id}/assinar
func (h *Handler) RegistrarAssinatura(w http.ResponseWriter, r *http.Request) {
	h.aplicarTransicao(w, r, EventoRegistrarAssinatura)
}

// POST /contratos/{id}/cancelar
func (h *Handler) Cancelar(w http.ResponseWriter, r *http.Request) {
	h.aplicarTransicao(w, r, EventoCancelar)
}

// POST /contratos/{id}/retornar-rascunho
func (h *Handler) RetornarParaRascunho(w http.ResponseWriter, r *http.Request) {
	h.aplicarTransicao(w, r, EventoRetornarParaRascunho)
}

func (h *Handler) aplicarTransicao(w http.ResponseWriter, r *http.Request, evento Evento) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, ok := h.carregarContrato(w, uint(id))
	if !ok {
		return
	}

	if err := AplicarEvento(c, evento, time.Now()); err != nil {
		responderErro(w, err)
		return
	}
	if err := h.Repository.Atualizar(h.DB, c); err != nil {
		http.Error(w, "erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}

	if evento == EventoRegistrarAssinatura {
		go notificacao.EnviarWebhookAssinatura(c.Numero, c.NomeCliente)
	}
	json.NewEncoder(w).Encode(c)
}

// responderErro traduz a taxonomia de erros do domínio para HTTP.
func responderErro(w http.ResponseWriter, err error) {
	var camposErr *ErroCamposVariante
	var transicaoErr *ErroTransicaoInvalida

	switch {
	case errors.Is(err, ErrReferenciaAusente):
		http.Error(w, "cliente, veículo ou funcionário não encontrado", http.StatusUnprocessableEntity)
	case errors.Is(err, ErrVarianteDesconhecida):
		http.Error(w, "variante de contrato desconhecida", http.StatusBadRequest)
	case errors.As(err, &camposErr):
		http.Error(w, camposErr.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &transicaoErr):
		http.Error(w, transicaoErr.Error(), http.StatusConflict)
	case errors.Is(err, ErrContratoBloqueado):
		http.Error(w, ErrContratoBloqueado.Error(), http.StatusConflict)
	case errors.Is(err, ErrGeracaoFalhou):
		http.Error(w, ErrGeracaoFalhou.Error(), http.StatusInternalServerError)
	default:
		http.Error(w, "erro interno", http.StatusInternalServerError)
	}
}
