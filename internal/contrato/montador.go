package contrato

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// Montador produz contratos em rascunho a partir do catálogo de modelos.
// Não tem estado além do catálogo imutável, então uma instância pode ser
// compartilhada entre requisições.
type Montador struct {
	Catalogo *Catalogo
}

func NovoMontador(cat *Catalogo) *Montador {
	return &Montador{Catalogo: cat}
}

// Montar seleciona o modelo da variante, substitui os tokens de cada
// cláusula e devolve o agregado pronto para persistir. Não tem efeito
// colateral: gravar é passo explícito do chamador.
func (m *Montador) Montar(
	variante Variante,
	cliente *DadosCliente,
	veiculo *DadosVeiculo,
	funcionario *DadosFuncionario,
	termos Termos,
	observacoes string,
	clienteID, veiculoID, funcionarioID uint,
) (*Contrato, error) {
	if cliente == nil || veiculo == nil || funcionario == nil {
		return nil, ErrReferenciaAusente
	}
	if termos == nil || termos.Variante() != variante {
		return nil, &ErroCamposVariante{Variante: variante, Campos: []string{"termos"}}
	}

	modelos, err := m.Catalogo.ModelosPara(variante)
	if err != nil {
		return nil, err
	}

	agora := time.Now()
	c := &Contrato{
		Numero:        GerarNumero(variante, agora),
		Variante:      variante,
		ClienteID:     clienteID,
		VeiculoID:     veiculoID,
		FuncionarioID: funcionarioID,
		NomeCliente:   cliente.Nome,
		MarcaVeiculo:  veiculo.Marca,
		DescVeiculo:   strings.TrimSpace(fmt.Sprintf("%s %s %d", veiculo.Marca, veiculo.Modelo, veiculo.Ano)),
		Status:        StatusRascunho,
		Observacoes:   observacoes,
	}
	aplicarTermos(c, termos)

	ctx := &ContextoSubstituicao{
		Cliente:          *cliente,
		Veiculo:          *veiculo,
		Funcionario:      *funcionario,
		ValorVenda:       c.ValorVenda,
		ValorGarantia:    c.ValorGarantia,
		DefeitoCoberto:   c.DefeitoCoberto,
		TaxaComissao:     c.TaxaComissao,
		PrazoConsignacao: c.PrazoConsignacaoDias,
		Agora:            agora,
	}

	c.Clausulas = make([]Clausula, 0, len(modelos))
	for _, modelo := range modelos {
		c.Clausulas = append(c.Clausulas, Clausula{
			Ordinal:  modelo.Ordinal,
			Titulo:   modelo.Titulo,
			Conteudo: Renderizar(modelo.Corpo, ctx),
		})
	}
	return c, nil
}

// RenovarNumero gera um novo número para o contrato após colisão de
// unicidade no repositório.
func (m *Montador) RenovarNumero(c *Contrato) {
	c.Numero = GerarNumero(c.Variante, time.Now())
}

// GerarNumero produz o número humano do contrato no formato
// TAG-ANO-SUFIXO, com sufixo aleatório de seis dígitos. Colisões não são
// prevenidas aqui; o índice único do repositório é o anteparo.
func GerarNumero(v Variante, agora time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	sufixo := int64(agora.UnixNano() % 1_000_000)
	if err == nil {
		sufixo = n.Int64()
	}
	return fmt.Sprintf("%s-%d-%06d", v.Tag(), agora.Year(), sufixo)
}
