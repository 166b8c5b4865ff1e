package efi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// TokenManager gerencia tokens OAuth2 (client_credentials) com refresh automático
// É thread-safe e cacheia o token até próximo da expiração
type TokenManager struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client

	mu          sync.RWMutex
	token       string
	expiresAt   time.Time
	refreshLead time.Duration // Tempo antes da expiração para fazer refresh
	now         func() time.Time
}

// NewTokenManager cria um novo gerenciador de tokens
func NewTokenManager(clientID, clientSecret, baseURL string, httpClient *http.Client) *TokenManager {
	return &TokenManager{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   httpClient,
		refreshLead:  60 * time.Second, // Renova 1 minuto antes de expirar
		now:          time.Now,
	}
}

// GetToken retorna um token válido, renovando se necessário
func (tm *TokenManager) GetToken(ctx context.Context) (string, error) {
	tm.mu.RLock()
	if tm.validLocked() {
		token := tm.token
		tm.mu.RUnlock()
		return token, nil
	}
	tm.mu.RUnlock()

	return tm.refresh(ctx)
}

// validLocked indica se o token em cache ainda serve; exige o lock
func (tm *TokenManager) validLocked() bool {
	return tm.token != "" && tm.now().Add(tm.refreshLead).Before(tm.expiresAt)
}

// refresh obtém um novo token da API
func (tm *TokenManager) refresh(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	// Double-check: outra goroutine pode ter renovado enquanto esperávamos o lock
	if tm.validLocked() {
		return tm.token, nil
	}

	authURL := tm.baseURL + "/oauth/token"
	body := strings.NewReader(`{"grant_type":"client_credentials"}`)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, authURL, body)
	if err != nil {
		return "", fmt.Errorf("erro ao criar requisição de auth: %w", err)
	}

	// Basic Auth com client_id:client_secret
	credentials := base64.StdEncoding.EncodeToString([]byte(tm.clientID + ":" + tm.clientSecret))
	req.Header.Set("Authorization", "Basic "+credentials)
	req.Header.Set("Content-Type", "application/json")

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro na requisição de auth: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta de auth: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr APIError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error() != "" {
			return "", fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Error())
		}
		return "", fmt.Errorf("%w: status %d - %s", ErrUnauthorized, resp.StatusCode, string(respBody))
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(respBody, &tokenResp); err != nil {
		return "", fmt.Errorf("erro ao decodificar token: %w", err)
	}

	tm.token = tokenResp.AccessToken
	tm.expiresAt = tm.now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	return tm.token, nil
}

// Invalidate força a renovação do token na próxima chamada
// Útil quando recebemos erro 401
func (tm *TokenManager) Invalidate() {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.token = ""
	tm.expiresAt = time.Time{}
}
