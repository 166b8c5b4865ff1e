package efi

const (
	// Produção
	PixURLProd = "https://pix.api.efipay.com.br"

	// Sandbox/Homologação
	PixURLSandbox = "https://pix-h.api.efipay.com.br"
)

// Status de cobrança imediata (cob)
const (
	CobStatusActive        = "ATIVA"
	CobStatusCompleted     = "CONCLUIDA"
	CobStatusRemovedByUser = "REMOVIDA_PELO_USUARIO_RECEBEDOR"
	CobStatusRemovedByPSP  = "REMOVIDA_PELO_PSP"
)

// DefaultChargeExpiration é a expiração padrão de uma cob, em segundos
const DefaultChargeExpiration = 3600

// Limites do txid de cobrança imediata na API Pix
const (
	minTxIDLength = 26
	maxTxIDLength = 35
)
