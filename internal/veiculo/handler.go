package veiculo

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /veiculos
func (h *Handler) CriarVeiculo(w http.ResponseWriter, r *http.Request) {
	var v Veiculo
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if v.Marca == "" || v.Modelo == "" {
		http.Error(w, "marca e modelo são obrigatórios", http.StatusBadRequest)
		return
	}
	if v.Situacao == "" {
		v.Situacao = SituacaoDisponivel
	}
	if err := h.Repository.Salvar(h.DB, &v); err != nil {
		http.Error(w, "erro ao salvar veículo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// GET /veiculos?situacao=Disponível
func (h *Handler) ListarVeiculos(w http.ResponseWriter, r *http.Request) {
	var lista []Veiculo
	var err error
	if situacao := r.URL.Query().Get("situacao"); situacao != "" {
		lista, err = h.Repository.ListarPorSituacao(h.DB, situacao)
	} else {
		lista, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar veículos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(lista)
}

// GET /veiculos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	v, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "veículo não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(v)
}

// PUT /veiculos/{id}
func (h *Handler) AtualizarVeiculo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var dados Veiculo
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar veículo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("veículo atualizado com sucesso"))
}

// DELETE /veiculos/{id}
func (h *Handler) DeletarVeiculo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir veículo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("veículo excluído com sucesso"))
}
