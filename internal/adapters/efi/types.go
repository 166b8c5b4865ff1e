package efi

// TokenResponse representa a resposta do endpoint de autenticação OAuth2
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
}

// PixCalendario define o calendário de uma cobrança PIX
type PixCalendario struct {
	Criacao   string `json:"criacao,omitempty"`
	Expiracao int    `json:"expiracao"` // Tempo em segundos até expirar
}

// PixDevedor representa os dados do devedor/pagador
type PixDevedor struct {
	CPF  string `json:"cpf,omitempty"`
	CNPJ string `json:"cnpj,omitempty"`
	Nome string `json:"nome,omitempty"`
}

// PixValor representa o valor da cobrança
type PixValor struct {
	Original string `json:"original"` // Valor como string com 2 casas decimais (ex: "100.00")
}

// PixLocation representa um location (payload do QR Code dinâmico)
type PixLocation struct {
	ID       int    `json:"id"`
	Location string `json:"location"`
	TipoCob  string `json:"tipoCob"`
	CriadoEm string `json:"criacao,omitempty"`
}

// PixCobRequest representa uma requisição para criar cobrança PIX imediata
type PixCobRequest struct {
	Calendario     PixCalendario `json:"calendario"`
	Devedor        *PixDevedor   `json:"devedor,omitempty"`
	Valor          PixValor      `json:"valor"`
	Chave          string        `json:"chave"` // Chave PIX do recebedor
	SolicitacaoPag string        `json:"solicitacaoPagador,omitempty"`
}

// PixCobResponse representa a resposta de uma cobrança PIX criada
type PixCobResponse struct {
	Calendario    PixCalendario `json:"calendario"`
	TxID          string        `json:"txid"`
	Revisao       int           `json:"revisao"`
	Loc           PixLocation   `json:"loc"`
	Location      string        `json:"location,omitempty"`
	Status        string        `json:"status"` // ATIVA, CONCLUIDA, REMOVIDA_PELO_USUARIO_RECEBEDOR, REMOVIDA_PELO_PSP
	Devedor       *PixDevedor   `json:"devedor,omitempty"`
	Valor         PixValor      `json:"valor"`
	Chave         string        `json:"chave"`
	PixCopiaECola string        `json:"pixCopiaECola,omitempty"`
}

// location retorna a URL do payload, preferindo o campo de topo
func (r *PixCobResponse) location() string {
	if r.Location != "" {
		return r.Location
	}
	return r.Loc.Location
}

// APIError representa um erro retornado pela API Efí
type APIError struct {
	Nome     string `json:"nome"`
	Mensagem string `json:"mensagem"`
	Type     string `json:"type,omitempty"`
	Title    string `json:"title,omitempty"`
	Status   int    `json:"status,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// Error implementa a interface error
func (e *APIError) Error() string {
	if e.Mensagem != "" {
		return e.Mensagem
	}
	if e.Detail != "" {
		return e.Detail
	}
	return e.Nome
}
