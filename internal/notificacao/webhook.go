package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarWebhookAssinatura avisa o sistema externo (financeiro/CRM) que um
// contrato foi assinado. O envio é melhor-esforço: falha é registrada em
// log e não interrompe o fluxo de assinatura.
func EnviarWebhookAssinatura(numero string, clienteNome string) {
	url := os.Getenv("WEBHOOK_ASSINATURA_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem": "Contrato assinado",
		"numero":   numero,
		"cliente":  clienteNome,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook de assinatura: %v", err)
		return
	}
	defer resp.Body.Close()
}
