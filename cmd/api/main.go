// Package main é o ponto de entrada da API de códigos PIX
package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/magnani/pix-brcode/internal/adapters/efi"
	"github.com/magnani/pix-brcode/internal/adapters/qrimage"
	"github.com/magnani/pix-brcode/internal/config"
	"github.com/magnani/pix-brcode/internal/handlers"
	"github.com/magnani/pix-brcode/internal/ports"
	"github.com/magnani/pix-brcode/internal/service/pix"
)

func main() {
	log.Println("💠 Iniciando API PIX BR Code...")

	// Carrega configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erro ao carregar configurações: %v", err)
	}

	log.Printf("📦 Ambiente: %s", cfg.Env)
	log.Printf("🏪 Recebedor: %s (%s)", cfg.Merchant.Name, cfg.Merchant.City)

	// PSP para cobranças dinâmicas (opcional)
	var provider ports.PixProvider
	if cfg.Efi.Enabled {
		log.Printf("🔐 Efí Sandbox: %v", cfg.Efi.Sandbox)
		if cfg.IsProduction() && cfg.Efi.Sandbox {
			log.Println("⚠️  Aviso: Efí em sandbox no ambiente de produção; cobranças não serão pagáveis")
		}
		efiClient, err := efi.NewClient(&cfg.Efi, cfg.Merchant.PixKey)
		if err != nil {
			log.Printf("⚠️  Aviso: Erro ao inicializar cliente Efí: %v", err)
			log.Println("   PIX dinâmico só funcionará com URL informada no pedido")
		} else {
			provider = efiClient
			log.Println("✅ Cliente Efí inicializado com sucesso")
		}
	} else {
		log.Println("ℹ️  Efí desabilitada: PIX dinâmico exige URL no pedido")
	}

	service := pix.NewService(cfg.Merchant, provider)
	api := handlers.NewAPI(service, qrimage.NewRenderer(), cfg.QRCode.Size)

	// Configura o router
	router := chi.NewRouter()
	api.AppendRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("🚀 Servidor rodando em http://localhost%s", srv.Addr)
	log.Printf("🏥 Health check: http://localhost%s/health", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("❌ Erro ao iniciar servidor: %v", err)
	}
}
