// Package ports define as interfaces (portas) para adaptadores externos
// Seguindo o padrão Hexagonal Architecture / Ports & Adapters
package ports

import (
	"context"
	"errors"

	"github.com/magnani/pix-brcode/internal/domain"
)

// Erros que os adaptadores de PSP devem envolver, para que as camadas de cima
// não dependam de um PSP específico
var (
	// ErrChargeNotFound indica cobrança inexistente no PSP
	ErrChargeNotFound = errors.New("cobrança não encontrada")

	// ErrInvalidCharge indica cobrança recusada pelo PSP por dados inválidos
	ErrInvalidCharge = errors.New("cobrança inválida")
)

// ──────────────────────────────────────────────
// PIX (PSP) types
// ──────────────────────────────────────────────

// PixChargeRequest representa uma requisição para criar cobrança PIX
type PixChargeRequest struct {
	TxID        string // Identificador único da transação (opcional, será gerado se vazio)
	Amount      int64  // Valor em centavos
	Description string // Descrição da cobrança
	ExpiresIn   int    // Tempo de expiração em segundos (ex: 3600 para 1 hora)

	// Dados do pagador
	PayerName     string
	PayerDocument string // CPF ou CNPJ
}

// PixChargeResponse representa a resposta de uma cobrança PIX criada
type PixChargeResponse struct {
	TxID      string // Identificador da transação
	Amount    int64  // Valor original em centavos
	Location  string // Location do payload, usada na seção 26/25 do BR Code
	Status    string // ATIVA, CONCLUIDA, REMOVIDA_PELO_USUARIO_RECEBEDOR, REMOVIDA_PELO_PSP
	PixCode   string // Código PIX copia e cola devolvido pelo PSP (se houver)
	ExpiresAt string // Data/hora de criação/expiração informada pelo PSP
}

// ──────────────────────────────────────────────
// Provider interfaces
// ──────────────────────────────────────────────

// PixProvider define a interface para o PSP que hospeda cobranças dinâmicas
type PixProvider interface {
	// CreatePixCharge cria uma nova cobrança PIX imediata
	CreatePixCharge(ctx context.Context, req *PixChargeRequest) (*PixChargeResponse, error)

	// GetPixCharge consulta uma cobrança PIX pelo txid
	GetPixCharge(ctx context.Context, txid string) (*PixChargeResponse, error)

	// CancelPixCharge cancela uma cobrança PIX pendente
	CancelPixCharge(ctx context.Context, txid string) error
}

// QRRenderer transforma o código copia e cola em imagem
type QRRenderer interface {
	// RenderPNG gera um PNG quadrado com o lado informado em pixels
	RenderPNG(payload string, size int) ([]byte, error)
}

// ──────────────────────────────────────────────
// Service interfaces
// ──────────────────────────────────────────────

// PayloadService define operações de geração do BR Code
type PayloadService interface {
	// GenerateStatic gera um código PIX estático para o recebedor configurado
	GenerateStatic(ctx context.Context, req *domain.ChargeRequest) (*domain.Charge, error)

	// GenerateDynamic gera um código PIX dinâmico (cria a cobrança no PSP se necessário)
	GenerateDynamic(ctx context.Context, req *domain.ChargeRequest) (*domain.Charge, error)

	// GetDynamic consulta no PSP a cobrança de um código dinâmico
	GetDynamic(ctx context.Context, txid string) (*domain.Charge, error)

	// CancelDynamic cancela no PSP a cobrança de um código dinâmico
	CancelDynamic(ctx context.Context, txid string) error
}
