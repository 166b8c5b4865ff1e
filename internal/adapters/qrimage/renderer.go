// Package qrimage desenha o código PIX copia e cola como QR Code
package qrimage

import (
	"errors"
	"fmt"

	qr "github.com/skip2/go-qrcode"

	"github.com/magnani/pix-brcode/internal/ports"
)

// ErrEmptyPayload indica que não há código para desenhar
var ErrEmptyPayload = errors.New("qrimage: payload vazio")

// Renderer gera PNGs com nível de correção médio (15%)
type Renderer struct {
	level qr.RecoveryLevel
}

// NewRenderer cria um Renderer com o nível de correção recomendado para o PIX
func NewRenderer() *Renderer {
	return &Renderer{level: qr.Medium}
}

// RenderPNG gera um PNG quadrado com o lado informado em pixels
func (r *Renderer) RenderPNG(payload string, size int) ([]byte, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	if size <= 0 {
		return nil, fmt.Errorf("qrimage: tamanho inválido %d", size)
	}

	png, err := qr.Encode(payload, r.level, size)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar QR Code: %w", err)
	}
	return png, nil
}

var _ ports.QRRenderer = (*Renderer)(nil)
