package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV", "MERCHANT_PROFILE", "PIX_KEY", "MERCHANT_NAME", "MERCHANT_CITY",
		"MERCHANT_CATEGORY_CODE", "MERCHANT_OUTRO_GUI", "MERCHANT_OUTRO_KEY",
		"EFI_ENABLED", "EFI_CLIENT_ID", "EFI_CLIENT_SECRET", "EFI_CERTIFICATE_PATH", "EFI_CERTIFICATE_PASSWORD",
		"EFI_SANDBOX", "EFI_PIX_URL", "QRCODE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIX_KEY", "chave@pix.com")
	t.Setenv("MERCHANT_NAME", " LOJA TESTE ")
	t.Setenv("MERCHANT_CITY", "SAO PAULO")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %v, want 9090", cfg.Port)
	}
	if cfg.Merchant.Name != "LOJA TESTE" {
		t.Errorf("Merchant.Name = %q, want %q", cfg.Merchant.Name, "LOJA TESTE")
	}
	if cfg.Efi.Enabled {
		t.Error("Efi.Enabled = true, want false")
	}
	if cfg.QRCode.Size != 256 {
		t.Errorf("QRCode.Size = %v, want 256", cfg.QRCode.Size)
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}
}

func TestLoadMerchantProfile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "merchant.yaml")
	profile := []byte(`merchant:
  pix_key: chave@pix.com
  name: PADARIA
  city: RIO DE JANEIRO
  category_code: "5812"
  outro_gui: br.com.psp
  outro_key: "12345"
`)
	if err := os.WriteFile(path, profile, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MERCHANT_PROFILE", path)
	t.Setenv("MERCHANT_CITY", "NITEROI")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	m := cfg.Merchant
	if m.Name != "PADARIA" || m.CategoryCode != "5812" || m.OutroKey != "12345" {
		t.Errorf("Merchant = %+v, want values from profile", m)
	}
	if m.City != "NITEROI" {
		t.Errorf("Merchant.City = %v, want env override NITEROI", m.City)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing merchant name", map[string]string{"PIX_KEY": "k", "MERCHANT_CITY": "RIO"}},
		{"missing pix key without efi", map[string]string{"MERCHANT_NAME": "LOJA", "MERCHANT_CITY": "RIO"}},
		{"efi without credentials", map[string]string{"PIX_KEY": "k", "MERCHANT_NAME": "LOJA", "MERCHANT_CITY": "RIO", "EFI_ENABLED": "true"}},
		{"missing pix key with efi", map[string]string{
			"MERCHANT_NAME": "LOJA", "MERCHANT_CITY": "RIO", "EFI_ENABLED": "true",
			"EFI_CLIENT_ID": "id", "EFI_CLIENT_SECRET": "secret", "EFI_CERTIFICATE_PATH": "/certs/efi.p12",
		}},
		{"invalid mcc", map[string]string{"PIX_KEY": "k", "MERCHANT_NAME": "LOJA", "MERCHANT_CITY": "RIO", "MERCHANT_CATEGORY_CODE": "12"}},
		{"missing profile file", map[string]string{"MERCHANT_PROFILE": "/nao/existe.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestLoadEfiEnabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIX_KEY", "chave@pix.com")
	t.Setenv("MERCHANT_NAME", "LOJA")
	t.Setenv("MERCHANT_CITY", "RIO")
	t.Setenv("ENV", "production")
	t.Setenv("EFI_ENABLED", "true")
	t.Setenv("EFI_CLIENT_ID", "id")
	t.Setenv("EFI_CLIENT_SECRET", "secret")
	t.Setenv("EFI_CERTIFICATE_PATH", "/certs/efi.p12")
	t.Setenv("EFI_SANDBOX", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Efi.Enabled || cfg.Efi.Sandbox {
		t.Errorf("Efi = %+v, want enabled without sandbox", cfg.Efi)
	}
	if cfg.Merchant.PixKey != "chave@pix.com" {
		t.Errorf("Merchant.PixKey = %q, want chave@pix.com", cfg.Merchant.PixKey)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
}
