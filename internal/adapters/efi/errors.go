package efi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/magnani/pix-brcode/internal/ports"
)

// Códigos de erro comuns da API Efí
const (
	ErrCodeInvalidToken   = "invalid_token"
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeInvalidValue   = "valor_invalido"
	ErrCodeTxIDDuplicated = "txid_duplicado"
)

// Erros sentinela para condições comuns
var (
	// ErrNotFound indica que o recurso não foi encontrado
	ErrNotFound = fmt.Errorf("efi: %w", ports.ErrChargeNotFound)

	// ErrUnauthorized indica falha de autenticação
	ErrUnauthorized = errors.New("efi: não autorizado")

	// ErrInvalidRequest indica requisição inválida
	ErrInvalidRequest = fmt.Errorf("efi: %w", ports.ErrInvalidCharge)

	// ErrDuplicateTxID indica que já existe uma cobrança com este txid
	ErrDuplicateTxID = errors.New("efi: txid duplicado")

	// ErrRateLimited indica rate limiting
	ErrRateLimited = errors.New("efi: rate limit atingido")

	// ErrServerError indica erro interno do servidor Efí
	ErrServerError = errors.New("efi: erro do servidor")
)

// IsNotFound retorna true se o erro indica que o recurso não foi encontrado
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}
	return false
}

// IsUnauthorized retorna true se o erro indica falha de autenticação
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized
	}
	return false
}

// IsServerError retorna true se o erro é do servidor (5xx)
func IsServerError(err error) bool {
	if errors.Is(err, ErrServerError) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 500
	}
	return false
}

// ClassifyError converte um erro da API para um erro sentinela quando apropriado
func ClassifyError(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.Status {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Error())
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Error())
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Error())
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrDuplicateTxID, apiErr.Error())
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, apiErr.Error())
	}

	if apiErr.Status >= 500 {
		return fmt.Errorf("%w: %s", ErrServerError, apiErr.Error())
	}

	if apiErr.Nome == ErrCodeTxIDDuplicated {
		return fmt.Errorf("%w: %s", ErrDuplicateTxID, apiErr.Error())
	}

	return err
}

// WrapAPIError envolve um erro com contexto adicional
func WrapAPIError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("efi %s: %w", operation, ClassifyError(err))
}
