// Package main implementa o brcode, utilitário de linha de comando que
// imprime o código PIX copia e cola e, opcionalmente, grava o QR Code em PNG.
//
// Uso:
//
//	brcode -key chave@pix.com -name "LOJA TESTE" -city "SAO PAULO" -amount 1050
//	brcode -dynamic -url https://pix.example.com/qr/v2/abc -name "LOJA" -city "RIO" -png qr.png
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/magnani/pix-brcode/internal/adapters/qrimage"
	"github.com/magnani/pix-brcode/internal/brcode"
	"github.com/magnani/pix-brcode/internal/domain"
)

type options struct {
	dynamic       bool
	pixKey        string
	uniquePayment bool
	url           string
	description   string
	name          string
	city          string
	mcc           string
	outroGui      string
	outroKey      string
	txid          string
	amount        int
	pngPath       string
	pngSize       int

	// flags informadas explicitamente (txid, url e amount são opcionais)
	set map[string]bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{set: map[string]bool{}}

	fs := flag.NewFlagSet("brcode", flag.ContinueOnError)
	fs.BoolVar(&opts.dynamic, "dynamic", false, "gera PIX dinâmico (usa -url e mascara o txid)")
	fs.StringVar(&opts.pixKey, "key", "", "chave PIX do recebedor")
	fs.BoolVar(&opts.uniquePayment, "unique", false, "código pode ser pago apenas uma vez")
	fs.StringVar(&opts.url, "url", "", "location do PIX dinâmico (o esquema é removido)")
	fs.StringVar(&opts.description, "description", "", "descrição do pagamento")
	fs.StringVar(&opts.name, "name", "", "nome do recebedor")
	fs.StringVar(&opts.city, "city", "", "cidade do recebedor")
	fs.StringVar(&opts.mcc, "mcc", brcode.DefaultMerchantCategoryCode, "merchant category code")
	fs.StringVar(&opts.outroGui, "outro-gui", "", "GUI de um arranjo adicional (seção 27)")
	fs.StringVar(&opts.outroKey, "outro-key", "", "chave do arranjo adicional (seção 27)")
	fs.StringVar(&opts.txid, "txid", "", "identificador da transação (PIX estático)")
	fs.IntVar(&opts.amount, "amount", 0, "valor em centavos (PIX estático)")
	fs.StringVar(&opts.pngPath, "png", "", "grava o QR Code neste arquivo PNG")
	fs.IntVar(&opts.pngSize, "size", 256, "lado do PNG em pixels")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("argumentos inesperados: %v", fs.Args())
	}
	return opts, nil
}

// builder monta o Builder a partir das flags
func (o *options) builder() *brcode.Builder {
	merchant := domain.Merchant{
		PixKey:       o.pixKey,
		Name:         o.name,
		City:         o.city,
		CategoryCode: o.mcc,
		OutroGui:     o.outroGui,
		OutroKey:     o.outroKey,
	}.Normalize()

	b := brcode.NewBuilder().
		SetDynamic(o.dynamic).
		SetPixKey(merchant.PixKey).
		SetUniquePayment(o.uniquePayment).
		SetDescription(o.description).
		SetMerchantName(merchant.Name).
		SetMerchantCity(merchant.City).
		SetMerchantCategoryCode(merchant.CategoryCode).
		SetMerchantOutroGui(merchant.OutroGui).
		SetMerchantOutroKey(merchant.OutroKey)

	if o.set["url"] {
		b.SetURL(&o.url)
	}
	if o.set["txid"] {
		b.SetTxid(&o.txid)
	}
	if o.set["amount"] {
		b.SetAmount(&o.amount)
	}
	return b
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	payload, err := opts.builder().Payload()
	if err != nil {
		return err
	}
	fmt.Println(payload)

	if opts.pngPath == "" {
		return nil
	}

	png, err := qrimage.NewRenderer().RenderPNG(payload, opts.pngSize)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.pngPath, png, 0o644); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", opts.pngPath, err)
	}
	log.Printf("🖼️  QR Code gravado em %s", opts.pngPath)
	return nil
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
