// Package pix gera códigos PIX (BR Code) para o recebedor configurado
package pix

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/magnani/pix-brcode/internal/brcode"
	"github.com/magnani/pix-brcode/internal/domain"
	"github.com/magnani/pix-brcode/internal/ports"
)

// ErrProviderDisabled indica PIX dinâmico pedido sem PSP configurado e sem URL
var ErrProviderDisabled = errors.New("pix: PSP não configurado para cobrança dinâmica")

// Service implementa ports.PayloadService
type Service struct {
	merchant domain.Merchant
	provider ports.PixProvider // nil quando não há PSP configurado
}

// NewService cria o serviço para um recebedor. provider pode ser nil.
func NewService(merchant domain.Merchant, provider ports.PixProvider) *Service {
	return &Service{
		merchant: merchant.Normalize(),
		provider: provider,
	}
}

// GenerateStatic gera um código PIX estático
func (s *Service) GenerateStatic(ctx context.Context, req *domain.ChargeRequest) (*domain.Charge, error) {
	staticReq := *req
	staticReq.Mode = domain.PixModeStatic
	if err := staticReq.Validate(); err != nil {
		return nil, err
	}

	payload, err := BuilderFor(s.merchant, &staticReq).Payload()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar código PIX estático: %w", err)
	}

	charge := domain.NewCharge(uuid.NewString(), domain.PixModeStatic, staticReq.AmountInCents(), payload)
	if staticReq.TxID != nil {
		charge.TxID = *staticReq.TxID
	}

	log.Printf("[PIX] Código estático gerado: id=%s valor=%s", charge.ID, brcode.FormatAmount(charge.Amount))
	return charge, nil
}

// GenerateDynamic gera um código PIX dinâmico.
// Se o pedido já traz a URL (location), o PSP não é consultado; caso
// contrário uma cobrança é criada no PSP e a location devolvida é usada.
func (s *Service) GenerateDynamic(ctx context.Context, req *domain.ChargeRequest) (*domain.Charge, error) {
	dynReq := *req
	dynReq.Mode = domain.PixModeDynamic
	if err := dynReq.Validate(); err != nil {
		return nil, err
	}

	var txid, status, expiresAt string
	if dynReq.URL == nil || *dynReq.URL == "" {
		if s.provider == nil {
			return nil, ErrProviderDisabled
		}

		cob, err := s.provider.CreatePixCharge(ctx, &ports.PixChargeRequest{
			TxID:          deref(dynReq.TxID),
			Amount:        int64(dynReq.AmountInCents()),
			Description:   dynReq.Description,
			ExpiresIn:     dynReq.ExpiresIn,
			PayerName:     dynReq.PayerName,
			PayerDocument: dynReq.PayerDocument,
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao criar cobrança no PSP: %w", err)
		}
		if cob.Location == "" {
			return nil, fmt.Errorf("PSP não retornou location para a cobrança %s", cob.TxID)
		}

		location := cob.Location
		dynReq.URL = &location
		txid, status, expiresAt = cob.TxID, cob.Status, cob.ExpiresAt
	} else {
		txid = deref(dynReq.TxID)
	}

	builder := BuilderFor(s.merchant, &dynReq)
	payload, err := builder.Payload()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar código PIX dinâmico: %w", err)
	}

	charge := domain.NewCharge(uuid.NewString(), domain.PixModeDynamic, dynReq.AmountInCents(), payload)
	charge.TxID = txid
	charge.Location = builder.URL()
	charge.Status = status
	charge.ExpiresAt = expiresAt

	log.Printf("[PIX] Código dinâmico gerado: id=%s txid=%s location=%s", charge.ID, charge.TxID, charge.Location)
	return charge, nil
}

// GetDynamic consulta a cobrança no PSP e devolve o código dinâmico dela.
// O código copia e cola do PSP tem preferência; sem ele, o código é
// remontado a partir da location.
func (s *Service) GetDynamic(ctx context.Context, txid string) (*domain.Charge, error) {
	if s.provider == nil {
		return nil, ErrProviderDisabled
	}
	if txid == "" {
		return nil, domain.NewValidationError("txid", "txid é obrigatório")
	}

	cob, err := s.provider.GetPixCharge(ctx, txid)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar cobrança no PSP: %w", err)
	}

	payload := cob.PixCode
	if payload == "" && cob.Location != "" {
		location := cob.Location
		payload, err = BuilderFor(s.merchant, &domain.ChargeRequest{
			Mode: domain.PixModeDynamic,
			URL:  &location,
		}).Payload()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar código PIX dinâmico: %w", err)
		}
	}

	charge := domain.NewCharge(cob.TxID, domain.PixModeDynamic, int(cob.Amount), payload)
	charge.TxID = cob.TxID
	charge.Location = brcode.StripScheme(cob.Location)
	charge.Status = cob.Status
	charge.ExpiresAt = cob.ExpiresAt
	return charge, nil
}

// CancelDynamic cancela a cobrança no PSP; o código dinâmico deixa de ser pagável
func (s *Service) CancelDynamic(ctx context.Context, txid string) error {
	if s.provider == nil {
		return ErrProviderDisabled
	}
	if txid == "" {
		return domain.NewValidationError("txid", "txid é obrigatório")
	}

	if err := s.provider.CancelPixCharge(ctx, txid); err != nil {
		return fmt.Errorf("erro ao cancelar cobrança no PSP: %w", err)
	}

	log.Printf("[PIX] Código dinâmico cancelado: txid=%s", txid)
	return nil
}

// BuilderFor monta o Builder do BR Code a partir do recebedor e do pedido
func BuilderFor(merchant domain.Merchant, req *domain.ChargeRequest) *brcode.Builder {
	b := brcode.NewBuilder().
		SetDynamic(req.Mode == domain.PixModeDynamic).
		SetPixKey(merchant.PixKey).
		SetMerchantName(merchant.Name).
		SetMerchantCity(merchant.City).
		SetMerchantOutroGui(merchant.OutroGui).
		SetMerchantOutroKey(merchant.OutroKey).
		SetDescription(req.Description).
		SetUniquePayment(req.UniquePayment).
		SetTxid(req.TxID).
		SetAmount(req.Amount).
		SetURL(req.URL)

	if merchant.CategoryCode != "" {
		b.SetMerchantCategoryCode(merchant.CategoryCode)
	}
	return b
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Garante que Service implementa PayloadService
var _ ports.PayloadService = (*Service)(nil)
