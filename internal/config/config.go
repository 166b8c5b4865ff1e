// Package config gerencia as configurações do aplicativo
// carregando variáveis de ambiente do arquivo .env
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/magnani/pix-brcode/internal/domain"
)

// Config armazena todas as configurações da aplicação
type Config struct {
	// Servidor
	Port string
	Env  string

	// Recebedor padrão das cobranças
	Merchant domain.Merchant

	// Efí Bank
	Efi EfiConfig

	// QR Code
	QRCode QRCodeConfig
}

// EfiConfig armazena configurações específicas da Efí Bank
type EfiConfig struct {
	Enabled             bool
	ClientID            string
	ClientSecret        string
	CertificatePath     string
	CertificatePassword string
	Sandbox             bool
	PixURL              string
}

// QRCodeConfig armazena configurações da imagem do QR Code
type QRCodeConfig struct {
	Size int // Lado da imagem em pixels
}

// merchantProfile é o formato do arquivo YAML de perfil do recebedor
type merchantProfile struct {
	Merchant domain.Merchant `yaml:"merchant"`
}

// Load carrega as configurações do arquivo .env e variáveis de ambiente
// O arquivo .env é opcional - variáveis de ambiente têm prioridade
func Load() (*Config, error) {
	// Tenta carregar .env (ignora erro se não existir)
	_ = godotenv.Load()

	merchant, err := loadMerchant(getEnv("MERCHANT_PROFILE", ""))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		Merchant: merchant.Normalize(),
		Efi: EfiConfig{
			Enabled:             getEnvBool("EFI_ENABLED", false),
			ClientID:            getEnv("EFI_CLIENT_ID", ""),
			ClientSecret:        getEnv("EFI_CLIENT_SECRET", ""),
			CertificatePath:     getEnv("EFI_CERTIFICATE_PATH", ""),
			CertificatePassword: getEnv("EFI_CERTIFICATE_PASSWORD", ""),
			Sandbox:             getEnvBool("EFI_SANDBOX", true),
			PixURL:              getEnv("EFI_PIX_URL", ""),
		},
		QRCode: QRCodeConfig{
			Size: getEnvInt("QRCODE_SIZE", 256),
		},
	}

	// Validação básica
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadMerchant lê o perfil YAML (opcional) e aplica as variáveis de ambiente por cima
func loadMerchant(profilePath string) (domain.Merchant, error) {
	var profile merchantProfile

	if profilePath != "" {
		data, err := os.ReadFile(profilePath)
		if err != nil {
			return domain.Merchant{}, fmt.Errorf("erro ao ler perfil do recebedor: %w", err)
		}
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return domain.Merchant{}, fmt.Errorf("erro ao decodificar perfil do recebedor: %w", err)
		}
	}

	m := profile.Merchant
	m.PixKey = getEnv("PIX_KEY", m.PixKey)
	m.Name = getEnv("MERCHANT_NAME", m.Name)
	m.City = getEnv("MERCHANT_CITY", m.City)
	m.CategoryCode = getEnv("MERCHANT_CATEGORY_CODE", m.CategoryCode)
	m.OutroGui = getEnv("MERCHANT_OUTRO_GUI", m.OutroGui)
	m.OutroKey = getEnv("MERCHANT_OUTRO_KEY", m.OutroKey)

	return m, nil
}

// validate verifica se as configurações obrigatórias estão presentes
func (c *Config) validate() error {
	if err := c.Merchant.Validate(); err != nil {
		return err
	}
	// A chave vai na seção 26 do BR Code e no campo "chave" de cada cob da Efí
	if c.Merchant.PixKey == "" {
		return fmt.Errorf("PIX_KEY é obrigatório")
	}
	if c.QRCode.Size <= 0 {
		return fmt.Errorf("QRCODE_SIZE deve ser positivo")
	}

	if !c.Efi.Enabled {
		return nil
	}
	if c.Efi.ClientID == "" {
		return fmt.Errorf("EFI_CLIENT_ID é obrigatório")
	}
	if c.Efi.ClientSecret == "" {
		return fmt.Errorf("EFI_CLIENT_SECRET é obrigatório")
	}
	if c.Efi.CertificatePath == "" {
		return fmt.Errorf("EFI_CERTIFICATE_PATH é obrigatório")
	}
	return nil
}

// IsDevelopment retorna true se estiver em ambiente de desenvolvimento
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction retorna true se estiver em ambiente de produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv obtém uma variável de ambiente ou retorna o valor padrão
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool obtém uma variável de ambiente como bool
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvInt obtém uma variável de ambiente como int
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
