package efi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/pkcs12"

	"github.com/magnani/pix-brcode/internal/brcode"
	"github.com/magnani/pix-brcode/internal/config"
	"github.com/magnani/pix-brcode/internal/ports"
)

var txidPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Client implementa ports.PixProvider para a API Pix da Efí Bank
type Client struct {
	baseURL      string
	pixKey       string // Chave PIX do recebedor
	httpClient   *http.Client
	tokenManager *TokenManager
}

// NewClient cria um novo cliente Efí com mTLS configurado
func NewClient(cfg *config.EfiConfig, pixKey string) (*Client, error) {
	// Carrega o certificado para mTLS
	tlsConfig, err := loadCertificate(cfg.CertificatePath, cfg.CertificatePassword)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar certificado: %w", err)
	}

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: tlsConfig,
		},
	}

	baseURL := cfg.PixURL
	if baseURL == "" {
		baseURL = PixURLProd
		if cfg.Sandbox {
			baseURL = PixURLSandbox
		}
	}

	tokenManager := NewTokenManager(cfg.ClientID, cfg.ClientSecret, baseURL, httpClient)

	return NewClientWithHTTP(baseURL, pixKey, httpClient, tokenManager), nil
}

// NewClientWithHTTP cria um cliente com um http.Client já configurado (útil para testes)
func NewClientWithHTTP(baseURL, pixKey string, httpClient *http.Client, tokenManager *TokenManager) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		pixKey:       pixKey,
		httpClient:   httpClient,
		tokenManager: tokenManager,
	}
}

// loadCertificate carrega um certificado .p12 para mTLS
func loadCertificate(certPath, password string) (*tls.Config, error) {
	certData, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler certificado: %w", err)
	}

	privateKey, certificate, err := pkcs12.Decode(certData, password)
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar certificado PKCS12: %w", err)
	}

	tlsCert := tls.Certificate{
		Certificate: [][]byte{certificate.Raw},
		PrivateKey:  privateKey,
	}

	return &tls.Config{
		Certificates: []tls.Certificate{tlsCert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// doRequest executa uma requisição HTTP autenticada
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na requisição HTTP: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	// Token rejeitado: descarta o cache para a próxima chamada
	if resp.StatusCode == http.StatusUnauthorized {
		c.tokenManager.Invalidate()
	}

	if resp.StatusCode >= 400 {
		var apiErr APIError
		if json.Unmarshal(respBody, &apiErr) != nil {
			apiErr = APIError{Detail: strings.TrimSpace(string(respBody))}
		}
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode
		}
		if apiErr.Error() == "" {
			apiErr.Detail = http.StatusText(resp.StatusCode)
		}
		return nil, &apiErr
	}

	return respBody, nil
}

// NewTxID gera um txid aceito pela API Pix (32 caracteres alfanuméricos)
func NewTxID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// validateTxID verifica o formato do txid de cobrança imediata
func validateTxID(txid string) error {
	if len(txid) < minTxIDLength || len(txid) > maxTxIDLength || !txidPattern.MatchString(txid) {
		return fmt.Errorf("%w: txid deve ter de %d a %d caracteres alfanuméricos", ErrInvalidRequest, minTxIDLength, maxTxIDLength)
	}
	return nil
}

// CreatePixCharge cria uma nova cobrança PIX imediata (cob).
// Sem txid, um txid é gerado e a cobrança é criada via PUT, para que a
// chamada possa ser repetida sem duplicar a cobrança.
func (c *Client) CreatePixCharge(ctx context.Context, req *ports.PixChargeRequest) (*ports.PixChargeResponse, error) {
	txid := req.TxID
	if txid == "" {
		txid = NewTxID()
	}
	if err := validateTxID(txid); err != nil {
		return nil, err
	}

	expiresIn := req.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = DefaultChargeExpiration
	}

	efiReq := PixCobRequest{
		Calendario: PixCalendario{
			Expiracao: expiresIn,
		},
		Valor: PixValor{
			Original: brcode.FormatAmount(int(req.Amount)),
		},
		Chave:          c.pixKey,
		SolicitacaoPag: req.Description,
	}

	// Adiciona dados do pagador se informados
	if req.PayerName != "" || req.PayerDocument != "" {
		efiReq.Devedor = &PixDevedor{
			Nome: req.PayerName,
		}
		if len(req.PayerDocument) == 11 {
			efiReq.Devedor.CPF = req.PayerDocument
		} else if len(req.PayerDocument) == 14 {
			efiReq.Devedor.CNPJ = req.PayerDocument
		}
	}

	respBody, err := c.doRequest(ctx, http.MethodPut, "/v2/cob/"+txid, efiReq)
	if err != nil {
		return nil, WrapAPIError("criar cobrança", err)
	}

	resp, err := decodeCob(respBody)
	if err != nil {
		return nil, err
	}

	log.Printf("[Efí] Cobrança criada: txid=%s status=%s", resp.TxID, resp.Status)
	return resp, nil
}

// GetPixCharge consulta uma cobrança PIX pelo txid
func (c *Client) GetPixCharge(ctx context.Context, txid string) (*ports.PixChargeResponse, error) {
	if txid == "" {
		return nil, fmt.Errorf("%w: txid é obrigatório", ErrInvalidRequest)
	}

	respBody, err := c.doRequest(ctx, http.MethodGet, "/v2/cob/"+txid, nil)
	if err != nil {
		return nil, WrapAPIError("consultar cobrança", err)
	}

	return decodeCob(respBody)
}

// CancelPixCharge cancela uma cobrança PIX pendente
func (c *Client) CancelPixCharge(ctx context.Context, txid string) error {
	if txid == "" {
		return fmt.Errorf("%w: txid é obrigatório", ErrInvalidRequest)
	}

	// Para cancelar, enviamos PATCH com status REMOVIDA_PELO_USUARIO_RECEBEDOR
	patchData := map[string]string{"status": CobStatusRemovedByUser}

	if _, err := c.doRequest(ctx, http.MethodPatch, "/v2/cob/"+txid, patchData); err != nil {
		return WrapAPIError("cancelar cobrança", err)
	}

	log.Printf("[Efí] Cobrança cancelada: txid=%s", txid)
	return nil
}

// decodeCob converte a resposta da API para o formato da porta
func decodeCob(body []byte) (*ports.PixChargeResponse, error) {
	var efiResp PixCobResponse
	if err := json.Unmarshal(body, &efiResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	return &ports.PixChargeResponse{
		TxID:      efiResp.TxID,
		Amount:    parseAmount(efiResp.Valor.Original),
		Location:  efiResp.location(),
		Status:    efiResp.Status,
		PixCode:   efiResp.PixCopiaECola,
		ExpiresAt: efiResp.Calendario.Criacao,
	}, nil
}

// parseAmount converte o valor da API ("10.50") para centavos; inválido vira 0
func parseAmount(v string) int64 {
	whole, frac, _ := strings.Cut(v, ".")
	frac = (frac + "00")[:2]
	cents, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0
	}
	return cents
}

// Garante que Client implementa PixProvider
var _ ports.PixProvider = (*Client)(nil)
