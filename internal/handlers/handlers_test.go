package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/magnani/pix-brcode/internal/adapters/qrimage"
	"github.com/magnani/pix-brcode/internal/domain"
	"github.com/magnani/pix-brcode/internal/handlers"
	"github.com/magnani/pix-brcode/internal/ports"
	"github.com/magnani/pix-brcode/internal/service/pix"
)

const knownTxID = "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"

type stubProvider struct {
	err       error
	cancelled string
}

func (p *stubProvider) CreatePixCharge(ctx context.Context, req *ports.PixChargeRequest) (*ports.PixChargeResponse, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &ports.PixChargeResponse{TxID: "abc123", Location: "pix.example.com/qr/v2/abc123", Status: "ATIVA"}, nil
}

func (p *stubProvider) GetPixCharge(ctx context.Context, txid string) (*ports.PixChargeResponse, error) {
	if p.err != nil {
		return nil, p.err
	}
	if txid != knownTxID {
		return nil, ports.ErrChargeNotFound
	}
	return &ports.PixChargeResponse{TxID: txid, Amount: 1050, Location: "pix.example.com/qr/v2/abc123", Status: "ATIVA"}, nil
}

func (p *stubProvider) CancelPixCharge(ctx context.Context, txid string) error {
	if txid != knownTxID {
		return ports.ErrChargeNotFound
	}
	p.cancelled = txid
	return nil
}

var merchant = domain.Merchant{
	PixKey: "chave@pix.com",
	Name:   "LOJA TESTE",
	City:   "SAO PAULO",
}

type chargeBody struct {
	ID       string `json:"id"`
	Mode     string `json:"mode"`
	Payload  string `json:"payload"`
	TxID     string `json:"txid"`
	Amount   string `json:"amount"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

func newRouter(provider ports.PixProvider) *chi.Mux {
	router := chi.NewRouter()
	api := handlers.NewAPI(pix.NewService(merchant, provider), qrimage.NewRenderer(), 128)
	api.AppendRoutes(router)
	return router
}

func post(router http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newRouter(nil)

	for _, path := range []string{"/health", "/api/health"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
		require.Contains(t, w.Body.String(), "healthy")
	}
}

func TestGenerateStatic(t *testing.T) {
	router := newRouter(nil)

	w := post(router, "/api/pix/static", `{"amount":1050}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEmpty(t, w.Header().Get(handlers.RequestIDHeader))

	var resp chargeBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "00020126350014BR.GOV.BCB.PIX0113chave@pix.com520400005303986540510.505802BR5910LOJA TESTE6009SAO PAULO6304916D", resp.Payload)
	require.Equal(t, "10.50", resp.Amount)
	require.Equal(t, "static", resp.Mode)
	require.NotEmpty(t, resp.ID)
}

func TestGenerateStaticEmptyBody(t *testing.T) {
	w := post(newRouter(nil), "/api/pix/static", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp chargeBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "0.00", resp.Amount)
}

func TestGenerateStaticBadRequest(t *testing.T) {
	router := newRouter(nil)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"amount":`},
		{"unknown field", `{"valor":10}`},
		{"negative amount", `{"amount":-1}`},
		{"txid with symbols", `{"txid":"PEDIDO-1"}`},
		{"description too long", `{"description":"` + string(bytes.Repeat([]byte("d"), 90)) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(router, "/api/pix/static", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestRequestIDIsPropagated(t *testing.T) {
	router := newRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/pix/static", nil)
	req.Header.Set(handlers.RequestIDHeader, "req-42")
	router.ServeHTTP(w, req)

	require.Equal(t, "req-42", w.Header().Get(handlers.RequestIDHeader))
}

func TestGenerateStaticQRCode(t *testing.T) {
	router := newRouter(nil)

	w := post(router, "/api/pix/static/qrcode?size=200", `{"amount":1050}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/png", w.Header().Get("Content-Type"))

	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	require.Equal(t, 200, img.Bounds().Dx())

	w = post(router, "/api/pix/static/qrcode?size=abc", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateDynamic(t *testing.T) {
	w := post(newRouter(&stubProvider{}), "/api/pix/dynamic", `{"amount":1050,"description":"Pedido"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp chargeBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "dynamic", resp.Mode)
	require.Equal(t, "abc123", resp.TxID)
	require.Equal(t, "pix.example.com/qr/v2/abc123", resp.Location)
	require.Contains(t, resp.Payload, "2528pix.example.com/qr/v2/abc123")
	require.Contains(t, resp.Payload, "62070503***")
}

func TestGenerateDynamicErrors(t *testing.T) {
	w := post(newRouter(nil), "/api/pix/dynamic", `{}`)
	require.Equal(t, http.StatusNotImplemented, w.Code)

	w = post(newRouter(&stubProvider{err: errors.New("timeout")}), "/api/pix/dynamic", `{}`)
	require.Equal(t, http.StatusBadGateway, w.Code)

	w = post(newRouter(nil), "/api/pix/dynamic", `{"url":"https://pix.example.com/qr/v2/x"}`)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestGenerateDynamicInvalidTxID(t *testing.T) {
	router := newRouter(&stubProvider{})

	for _, body := range []string{
		`{"amount":1050,"txid":"PEDIDO123"}`,
		`{"amount":1050,"txid":"a1b2c3d4-e5f6-a7b8-c9d0-e1f2a3b4c5d6"}`,
	} {
		w := post(router, "/api/pix/dynamic", body)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	}
}

func TestGenerateDynamicProviderRejectsCharge(t *testing.T) {
	provider := &stubProvider{err: fmt.Errorf("efi criar cobrança: %w", ports.ErrInvalidCharge)}

	w := post(newRouter(provider), "/api/pix/dynamic", `{"amount":1050}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDynamic(t *testing.T) {
	router := newRouter(&stubProvider{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pix/dynamic/"+knownTxID, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp chargeBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, knownTxID, resp.TxID)
	require.Equal(t, "ATIVA", resp.Status)
	require.Equal(t, "10.50", resp.Amount)
	require.Contains(t, resp.Payload, "2528pix.example.com/qr/v2/abc123")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pix/dynamic/desconhecido", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	newRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pix/dynamic/"+knownTxID, nil))
	require.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestCancelDynamic(t *testing.T) {
	provider := &stubProvider{}
	router := newRouter(provider)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/pix/dynamic/"+knownTxID, nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, knownTxID, provider.cancelled)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/pix/dynamic/desconhecido", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
