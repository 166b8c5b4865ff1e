// Package efi implementa o adaptador para a API PIX da Efí Bank (antiga Gerencianet).
//
// O adaptador cria cobranças imediatas (cob) e devolve a location do payload,
// que é a URL usada no BR Code dinâmico (seção 26, subcampo 25).
//
// # Autenticação
//
// A API Efí usa OAuth2 com mTLS (mutual TLS). Você precisa:
//   - Client ID e Client Secret (do painel Efí)
//   - Certificado .p12 (gerado no painel Efí)
//
// # Início Rápido
//
// Criar o cliente e uma cobrança de R$ 10,50:
//
//	client, err := efi.NewClient(&cfg.Efi, "sua-chave-pix")
//	charge, err := client.CreatePixCharge(ctx, &ports.PixChargeRequest{
//	    Amount:      1050,
//	    Description: "Pedido 123",
//	})
//
// A location retornada (charge.Location) vira a URL do BR Code dinâmico:
//
//	payload, err := brcode.NewBuilder().
//	    SetDynamic(true).
//	    SetURL(&charge.Location).
//	    SetMerchantName("LOJA TESTE").
//	    SetMerchantCity("SAO PAULO").
//	    Payload()
//
// # Tratamento de Erros
//
// O pacote fornece erros tipados para condições comuns:
//
//	if efi.IsNotFound(err) {
//	    // Cobrança não existe
//	}
//	if errors.Is(err, efi.ErrDuplicateTxID) {
//	    // Já existe uma cobrança com este txid
//	}
//
// # Documentação da API
//
// Para mais detalhes, consulte a documentação oficial:
// https://dev.efipay.com.br
package efi
