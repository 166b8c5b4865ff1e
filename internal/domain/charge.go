package domain

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"
)

// PixMode define se o QR Code é estático ou dinâmico
type PixMode string

const (
	PixModeStatic  PixMode = "static"
	PixModeDynamic PixMode = "dynamic"
)

// IsValid verifica se o modo é conhecido
func (m PixMode) IsValid() bool {
	return m == PixModeStatic || m == PixModeDynamic
}

// Limites do txid: até 25 caracteres no QR Code estático; de 26 a 35
// na cobrança imediata (cob) do PIX dinâmico
const (
	MaxStaticTxIDLength  = 25
	MinDynamicTxIDLength = 26
	MaxDynamicTxIDLength = 35
)

// MaxDescriptionLength é o maior texto que cabe na seção 26 ao lado do GUI
// ("0014BR.GOV.BCB.PIX" + "02" + tamanho). Com a chave PIX o limite real é menor
// e o estouro é apontado pelo próprio BR Code.
const MaxDescriptionLength = 77

var (
	staticTxIDPattern  = regexp.MustCompile(`^[a-zA-Z0-9]*$`)
	dynamicTxIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// ChargeRequest representa o pedido de geração de um código PIX
type ChargeRequest struct {
	Mode          PixMode `json:"mode"`
	Amount        *int    `json:"amount,omitempty"` // Valor em centavos
	TxID          *string `json:"txid,omitempty"`
	Description   string  `json:"description,omitempty"`
	URL           *string `json:"url,omitempty"`            // Location do PIX dinâmico, se já existir
	UniquePayment bool    `json:"unique_payment,omitempty"` // Código pode ser pago apenas uma vez
	ExpiresIn     int     `json:"expires_in,omitempty"`     // Segundos, apenas PIX dinâmico via PSP

	// Dados do pagador (PIX dinâmico via PSP)
	PayerName     string `json:"payer_name,omitempty"`
	PayerDocument string `json:"payer_document,omitempty"` // CPF ou CNPJ
}

// Validate verifica o pedido antes de montar o payload
func (r *ChargeRequest) Validate() error {
	if r.Mode != "" && !r.Mode.IsValid() {
		return NewValidationError("mode", "modo deve ser static ou dynamic")
	}
	if r.Amount != nil && *r.Amount < 0 {
		return NewValidationError("amount", "valor não pode ser negativo")
	}
	if r.TxID != nil {
		if err := r.validateTxID(*r.TxID); err != nil {
			return err
		}
	}
	if n := utf8.RuneCountInString(r.Description); n > MaxDescriptionLength {
		return NewValidationError("description", fmt.Sprintf("descrição tem %d caracteres, máximo %d", n, MaxDescriptionLength))
	}
	if r.ExpiresIn < 0 {
		return NewValidationError("expires_in", "expiração não pode ser negativa")
	}
	return nil
}

// validateTxID aplica o formato de txid do modo do pedido.
// No dinâmico o txid vai para a cob do PSP; txid vazio pede um gerado.
func (r *ChargeRequest) validateTxID(txid string) error {
	if r.Mode != PixModeDynamic {
		if len(txid) > MaxStaticTxIDLength {
			return NewValidationError("txid", "txid do PIX estático tem no máximo 25 caracteres")
		}
		if !staticTxIDPattern.MatchString(txid) {
			return NewValidationError("txid", "txid deve conter apenas letras e números")
		}
		return nil
	}

	if txid == "" {
		return nil
	}
	if len(txid) < MinDynamicTxIDLength || len(txid) > MaxDynamicTxIDLength || !dynamicTxIDPattern.MatchString(txid) {
		return NewValidationError("txid", "txid do PIX dinâmico deve ter de 26 a 35 caracteres alfanuméricos")
	}
	return nil
}

// AmountInCents retorna o valor em centavos (0 se não informado)
func (r *ChargeRequest) AmountInCents() int {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}

// Charge representa um código PIX gerado
type Charge struct {
	ID        string    `json:"id"`
	Mode      PixMode   `json:"mode"`
	Amount    int       `json:"amount"` // Valor em centavos
	TxID      string    `json:"txid,omitempty"`
	Location  string    `json:"location,omitempty"` // Location do payload (PIX dinâmico)
	Status    string    `json:"status,omitempty"`   // Status da cob no PSP (PIX dinâmico)
	Payload   string    `json:"payload"`            // Código PIX copia e cola
	ExpiresAt string    `json:"expires_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsDynamic verifica se a cobrança é dinâmica
func (c *Charge) IsDynamic() bool {
	return c.Mode == PixModeDynamic
}

// AmountInReais retorna o valor em reais
func (c *Charge) AmountInReais() float64 {
	return float64(c.Amount) / 100
}

// NewCharge cria uma nova cobrança gerada agora
func NewCharge(id string, mode PixMode, amountInCents int, payload string) *Charge {
	return &Charge{
		ID:        id,
		Mode:      mode,
		Amount:    amountInCents,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}
