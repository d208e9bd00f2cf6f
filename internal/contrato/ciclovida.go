package contrato

import "time"

// Evento é uma ação sobre o ciclo de vida do contrato.
type Evento string

const (
	EventoEnviarParaAssinatura Evento = "EnviarParaAssinatura"
	EventoRegistrarAssinatura  Evento = "RegistrarAssinatura"
	EventoCancelar             Evento = "Cancelar"
	EventoRetornarParaRascunho Evento = "RetornarParaRascunho"
)

type transicao struct {
	destino Status
	// guarda valida o contrato antes da transição; nil libera sempre.
	guarda func(*Contrato) error
	// efeito roda depois da troca de status.
	efeito func(*Contrato, time.Time)
}

// tabelaTransicoes é a máquina de estados completa. Pares (status, evento)
// fora da tabela são rejeitados; Assinado e Cancelado são terminais e não
// aparecem como origem.
var tabelaTransicoes = map[Status]map[Evento]transicao{
	StatusRascunho: {
		EventoEnviarParaAssinatura: {destino: StatusAguardando, guarda: exigirCamposDaVariante},
		EventoCancelar:             {destino: StatusCancelado},
	},
	StatusAguardando: {
		EventoRegistrarAssinatura: {destino: StatusAssinado, efeito: carimbarAssinatura},
		EventoCancelar:            {destino: StatusCancelado},
		EventoRetornarParaRascunho: {
			destino: StatusRascunho,
		},
	},
}

func exigirCamposDaVariante(c *Contrato) error {
	if ausentes := c.CamposObrigatoriosAusentes(); len(ausentes) > 0 {
		return &ErroCamposVariante{Variante: c.Variante, Campos: ausentes}
	}
	return nil
}

func carimbarAssinatura(c *Contrato, agora time.Time) {
	c.AssinadoEm = &agora
}

// AplicarEvento executa a transição do ciclo de vida sobre o contrato em
// memória. Em caso de rejeição o contrato fica intacto (status e
// AssinadoEm inalterados); persistir a mudança é passo do chamador.
func AplicarEvento(c *Contrato, evento Evento, agora time.Time) error {
	t, ok := tabelaTransicoes[c.Status][evento]
	if !ok {
		return &ErroTransicaoInvalida{Atual: c.Status, Evento: evento}
	}
	if t.guarda != nil {
		if err := t.guarda(c); err != nil {
			return err
		}
	}
	c.Status = t.destino
	if t.efeito != nil {
		t.efeito(c, agora)
	}
	return nil
}

// VerificarEditavel rejeita edição de cláusulas, observações e campos
// financeiros quando o contrato está em status terminal.
func VerificarEditavel(c *Contrato) error {
	if !c.Editavel() {
		return ErrContratoBloqueado
	}
	return nil
}
