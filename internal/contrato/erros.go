package contrato

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrReferenciaAusente indica que cliente, veículo ou funcionário não
	// foi encontrado ao gerar o contrato.
	ErrReferenciaAusente = errors.New("referência de cliente, veículo ou funcionário ausente")

	// ErrVarianteDesconhecida indica uma variante fora do conjunto fechado.
	// Com o enum fechado isso aponta erro de programação no chamador.
	ErrVarianteDesconhecida = errors.New("variante de contrato desconhecida")

	// ErrContratoBloqueado indica tentativa de edição em contrato assinado
	// ou cancelado.
	ErrContratoBloqueado = errors.New("contrato assinado ou cancelado não pode ser editado")

	// ErrNumeroDuplicado indica colisão no número do contrato; o chamador
	// deve gerar novo sufixo e tentar de novo.
	ErrNumeroDuplicado = errors.New("número de contrato já existente")

	// ErrGeracaoFalhou indica que as tentativas de gerar um número único
	// se esgotaram.
	ErrGeracaoFalhou = errors.New("não foi possível gerar um número de contrato único")
)

// ErroCamposVariante indica termos financeiros inconsistentes com a
// variante escolhida, ou campos obrigatórios ausentes no envio para
// assinatura.
type ErroCamposVariante struct {
	Variante Variante
	Campos   []string
}

func (e *ErroCamposVariante) Error() string {
	return fmt.Sprintf("campos inválidos para %s: %s", e.Variante, strings.Join(e.Campos, ", "))
}

// ErroTransicaoInvalida indica um evento não permitido para o status atual.
type ErroTransicaoInvalida struct {
	Atual  Status
	Evento Evento
}

func (e *ErroTransicaoInvalida) Error() string {
	return fmt.Sprintf("transição %q não permitida no status %q", e.Evento, e.Atual)
}
