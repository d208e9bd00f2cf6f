package main

import (
	"log"
	"net/http"
	"os"

	"github.com/RevendaPrime/api-revenda/internal/auth"
	"github.com/RevendaPrime/api-revenda/internal/cliente"
	"github.com/RevendaPrime/api-revenda/internal/contrato"
	"github.com/RevendaPrime/api-revenda/internal/funcionario"
	"github.com/RevendaPrime/api-revenda/internal/utils/db"
	"github.com/RevendaPrime/api-revenda/internal/veiculo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	conexao, err := db.Conectar()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	if err := conexao.AutoMigrate(
		&cliente.Cliente{},
		&veiculo.Veiculo{},
		&funcionario.Funcionario{},
		&contrato.Contrato{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	clienteHandler := cliente.NewHandler(conexao)
	veiculoHandler := veiculo.NewHandler(conexao)
	funcionarioHandler := funcionario.NewHandler(conexao)
	contratoHandler := contrato.NewHandler(conexao, contrato.NovoCatalogo())

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", funcionarioHandler.Login).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de clientes
	api.HandleFunc("/clientes", clienteHandler.CriarCliente).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.ListarClientes).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.AtualizarCliente).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.DeletarCliente).Methods("DELETE")

	// Rotas de veículos
	api.HandleFunc("/veiculos", veiculoHandler.CriarVeiculo).Methods("POST")
	api.HandleFunc("/veiculos", veiculoHandler.ListarVeiculos).Methods("GET")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.AtualizarVeiculo).Methods("PUT")
	api.HandleFunc("/veiculos/{id}", veiculoHandler.DeletarVeiculo).Methods("DELETE")

	// Rotas de funcionários; criação, exclusão e redefinição de senha são
	// restritas a administradores.
	api.Handle("/funcionarios", auth.RequireAdmin(http.HandlerFunc(funcionarioHandler.CriarFuncionario))).Methods("POST")
	api.HandleFunc("/funcionarios", funcionarioHandler.ListarFuncionarios).Methods("GET")
	api.HandleFunc("/funcionarios/me", funcionarioHandler.Me).Methods("GET")
	api.HandleFunc("/funcionarios/{id}", funcionarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/funcionarios/{id}", funcionarioHandler.AtualizarFuncionario).Methods("PUT")
	api.Handle("/funcionarios/{id}", auth.RequireAdmin(http.HandlerFunc(funcionarioHandler.DeletarFuncionario))).Methods("DELETE")
	api.Handle("/funcionarios/{id}/redefinir-senha", auth.RequireAdmin(http.HandlerFunc(funcionarioHandler.RedefinirSenha))).Methods("POST")

	// Rotas de contratos
	api.HandleFunc("/contratos", contratoHandler.GerarContrato).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.ListarContratos).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.AtualizarContrato).Methods("PUT")
	api.HandleFunc("/contratos/{id}/enviar-assinatura", contratoHandler.EnviarParaAssinatura).Methods("POST")
	api.HandleFunc("/contratos/{id}/assinar", contratoHandler.RegistrarAssinatura).Methods("POST")
	api.HandleFunc("/contratos/{id}/cancelar", contratoHandler.Cancelar).Methods("POST")
	api.HandleFunc("/contratos/{id}/retornar-rascunho", contratoHandler.RetornarParaRascunho).Methods("POST")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	log.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
