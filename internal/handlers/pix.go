package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/magnani/pix-brcode/internal/brcode"
	"github.com/magnani/pix-brcode/internal/domain"
	"github.com/magnani/pix-brcode/internal/ports"
	"github.com/magnani/pix-brcode/internal/service/pix"
)

// RequestIDHeader é o header usado para correlacionar requisições nos logs
const RequestIDHeader = "X-Request-ID"

// maxQRCodeSize limita o lado da imagem pedido via query string
const maxQRCodeSize = 2048

// API expõe a geração de códigos PIX via HTTP
type API struct {
	service  ports.PayloadService
	renderer ports.QRRenderer
	qrSize   int
}

// NewAPI cria a API. renderer pode ser nil (rota de imagem responde 501).
func NewAPI(service ports.PayloadService, renderer ports.QRRenderer, qrSize int) *API {
	return &API{
		service:  service,
		renderer: renderer,
		qrSize:   qrSize,
	}
}

// AppendRoutes registra as rotas PIX no router
func (a *API) AppendRoutes(r chi.Router) {
	r.Get("/health", HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Use(RequestID)
		r.Get("/health", HealthCheck)

		r.Route("/pix", func(r chi.Router) {
			r.Post("/static", a.generateStatic)
			r.Post("/static/qrcode", a.generateStaticQRCode)
			r.Post("/dynamic", a.generateDynamic)
			r.Get("/dynamic/{txid}", a.getDynamic)
			r.Delete("/dynamic/{txid}", a.cancelDynamic)
		})
	})
}

// chargeResponse é o corpo devolvido pelas rotas de geração
type chargeResponse struct {
	ID        string `json:"id"`
	Mode      string `json:"mode"`
	Payload   string `json:"payload"`
	TxID      string `json:"txid,omitempty"`
	Amount    string `json:"amount"` // Em reais, com duas casas ("10.50")
	Location  string `json:"location,omitempty"`
	Status    string `json:"status,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

func newChargeResponse(c *domain.Charge) chargeResponse {
	return chargeResponse{
		ID:        c.ID,
		Mode:      string(c.Mode),
		Payload:   c.Payload,
		TxID:      c.TxID,
		Amount:    brcode.FormatAmount(c.Amount),
		Location:  c.Location,
		Status:    c.Status,
		ExpiresAt: c.ExpiresAt,
	}
}

func (a *API) generateStatic(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeChargeRequest(w, r)
	if !ok {
		return
	}

	charge, err := a.service.GenerateStatic(r.Context(), req)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, newChargeResponse(charge))
}

func (a *API) generateDynamic(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeChargeRequest(w, r)
	if !ok {
		return
	}

	charge, err := a.service.GenerateDynamic(r.Context(), req)
	if err != nil {
		// Falhas fora de validação vêm do PSP
		writeError(w, r, err, http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusCreated, newChargeResponse(charge))
}

func (a *API) getDynamic(w http.ResponseWriter, r *http.Request) {
	txid := chi.URLParam(r, "txid")

	charge, err := a.service.GetDynamic(r.Context(), txid)
	if err != nil {
		writeError(w, r, err, http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, newChargeResponse(charge))
}

func (a *API) cancelDynamic(w http.ResponseWriter, r *http.Request) {
	txid := chi.URLParam(r, "txid")

	if err := a.service.CancelDynamic(r.Context(), txid); err != nil {
		writeError(w, r, err, http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) generateStaticQRCode(w http.ResponseWriter, r *http.Request) {
	if a.renderer == nil {
		http.Error(w, "geração de imagem não configurada", http.StatusNotImplemented)
		return
	}

	size := a.qrSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxQRCodeSize {
			http.Error(w, "size deve ser um inteiro entre 1 e 2048", http.StatusBadRequest)
			return
		}
		size = parsed
	}

	req, ok := decodeChargeRequest(w, r)
	if !ok {
		return
	}

	charge, err := a.service.GenerateStatic(r.Context(), req)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	png, err := a.renderer.RenderPNG(charge.Payload, size)
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// decodeChargeRequest lê o corpo JSON. Corpo vazio equivale a um pedido sem campos.
func decodeChargeRequest(w http.ResponseWriter, r *http.Request) (*domain.ChargeRequest, bool) {
	req := &domain.ChargeRequest{}
	if r.Body == nil {
		return req, true
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return req, true
}

// statusFor traduz erros conhecidos em status HTTP
func statusFor(err error, fallback int) int {
	switch {
	case domain.IsValidationError(err), brcode.IsConfigurationError(err), errors.Is(err, ports.ErrInvalidCharge):
		return http.StatusBadRequest
	case errors.Is(err, ports.ErrChargeNotFound):
		return http.StatusNotFound
	case errors.Is(err, pix.ErrProviderDisabled):
		return http.StatusNotImplemented
	}
	return fallback
}

func writeError(w http.ResponseWriter, r *http.Request, err error, fallback int) {
	status := statusFor(err, fallback)
	if status >= http.StatusInternalServerError {
		log.Printf("[HTTP] Erro em %s %s (id=%s): %v", r.Method, r.URL.Path, w.Header().Get(RequestIDHeader), err)
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// RequestID garante um X-Request-ID em cada requisição e o devolve na resposta
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)

		log.Printf("[HTTP] %s %s id=%s", r.Method, r.URL.Path, id)
		next.ServeHTTP(w, r)
	})
}
