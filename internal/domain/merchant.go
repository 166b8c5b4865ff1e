// Package domain contém as entidades de domínio da aplicação
package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Merchant representa o recebedor das cobranças PIX
type Merchant struct {
	PixKey       string `json:"pix_key" yaml:"pix_key"`
	Name         string `json:"name" yaml:"name"`
	City         string `json:"city" yaml:"city"`
	CategoryCode string `json:"category_code,omitempty" yaml:"category_code"` // MCC, default "0000"
	OutroGui     string `json:"outro_gui,omitempty" yaml:"outro_gui"`         // GUI do PSP alternativo
	OutroKey     string `json:"outro_key,omitempty" yaml:"outro_key"`         // conta no PSP alternativo
}

// Normalize remove espaços das pontas e converte os textos para NFC.
// Um "Ã" decomposto (A + til combinante) contaria como dois caracteres
// no tamanho da seção e como dois glifos em alguns leitores.
func (m Merchant) Normalize() Merchant {
	return Merchant{
		PixKey:       strings.TrimSpace(m.PixKey),
		Name:         normalizeText(m.Name),
		City:         normalizeText(m.City),
		CategoryCode: strings.TrimSpace(m.CategoryCode),
		OutroGui:     strings.TrimSpace(m.OutroGui),
		OutroKey:     strings.TrimSpace(m.OutroKey),
	}
}

// Validate verifica os campos obrigatórios do recebedor
func (m Merchant) Validate() error {
	if m.Name == "" {
		return NewValidationError("merchant_name", "nome do recebedor é obrigatório")
	}
	if m.City == "" {
		return NewValidationError("merchant_city", "cidade do recebedor é obrigatória")
	}
	if m.CategoryCode != "" && !isDigits(m.CategoryCode, 4) {
		return NewValidationError("merchant_category_code", fmt.Sprintf("MCC deve ter 4 dígitos, recebido %q", m.CategoryCode))
	}
	return nil
}

// normalizeText aplica trim e NFC
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func isDigits(s string, size int) bool {
	if len(s) != size {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
