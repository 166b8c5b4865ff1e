// Package brcode gera o código "copia e cola" do PIX (BR Code).
//
// O BR Code é uma sequência de data-objects no formato TLV: id de dois
// dígitos, tamanho de dois dígitos e valor. Seções com valor vazio são
// omitidas por completo, inclusive as compostas. O payload termina com a
// seção 63 contendo o CRC16-CCITT (polinômio 0x1021, valor inicial 0xFFFF)
// calculado sobre todo o texto anterior mais "6304".
//
// # Início Rápido
//
// PIX estático com valor:
//
//	amount := 1050 // R$ 10,50
//	payload, err := brcode.NewBuilder().
//	    SetPixKey("chave@pix.com").
//	    SetMerchantName("LOJA TESTE").
//	    SetMerchantCity("SAO PAULO").
//	    SetAmount(&amount).
//	    Payload()
//
// PIX dinâmico, a partir da location devolvida pelo PSP:
//
//	payload, err := brcode.NewBuilder().
//	    SetDynamic(true).
//	    SetURL(&location).
//	    SetMerchantName("LOJA TESTE").
//	    SetMerchantCity("SAO PAULO").
//	    Payload()
//
// # Erros
//
// Nenhum campo é validado quanto a conteúdo. Valores que não cabem no campo
// de tamanho (100 caracteres ou mais) e valores negativos retornam um
// *ConfigurationError em vez de um payload malformado.
//
// Para mais detalhes, consulte o Manual do BR Code do Banco Central:
// https://www.bcb.gov.br/estabilidadefinanceira/pix
package brcode
