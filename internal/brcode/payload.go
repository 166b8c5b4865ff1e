package brcode

import "strings"

// Builder monta o código "copia e cola" (BR Code) de uma cobrança PIX.
//
// Os setters retornam o próprio Builder para encadeamento. O Builder não é
// seguro para alteração concorrente; Payload apenas lê a configuração.
type Builder struct {
	dynamic              bool
	pixKey               string
	description          string
	merchantName         string
	merchantCity         string
	merchantCategoryCode string
	merchantOutroGui     string
	merchantOutroKey     string
	txid                 string
	amount               int
	uniquePayment        bool
	url                  string
}

// NewBuilder cria um Builder estático com a categoria padrão "0000"
func NewBuilder() *Builder {
	return &Builder{
		merchantCategoryCode: DefaultMerchantCategoryCode,
	}
}

// SetDynamic define se o QR Code vai ser dinâmico (com URL) ou estático
func (b *Builder) SetDynamic(dynamic bool) *Builder {
	b.dynamic = dynamic
	return b
}

// SetPixKey define a chave PIX do recebedor
func (b *Builder) SetPixKey(pixKey string) *Builder {
	b.pixKey = pixKey
	return b
}

// SetUniquePayment define se o PIX poderá ser pago apenas uma vez
func (b *Builder) SetUniquePayment(uniquePayment bool) *Builder {
	b.uniquePayment = uniquePayment
	return b
}

// SetURL define a URL do payload (location) do PIX dinâmico.
// O prefixo http:// ou https:// é removido; nil limpa a URL.
func (b *Builder) SetURL(url *string) *Builder {
	if url == nil {
		b.url = ""
		return b
	}
	b.url = StripScheme(*url)
	return b
}

// SetDescription define a descrição do pagamento
func (b *Builder) SetDescription(description string) *Builder {
	b.description = description
	return b
}

// SetMerchantName define o nome do recebedor
func (b *Builder) SetMerchantName(merchantName string) *Builder {
	b.merchantName = merchantName
	return b
}

// SetMerchantCity define a cidade do recebedor
func (b *Builder) SetMerchantCity(merchantCity string) *Builder {
	b.merchantCity = merchantCity
	return b
}

// SetMerchantCategoryCode define o MCC do recebedor
func (b *Builder) SetMerchantCategoryCode(merchantCategoryCode string) *Builder {
	b.merchantCategoryCode = merchantCategoryCode
	return b
}

// SetMerchantOutroGui define o GUI de um PSP que entende esse valor especificamente.
// Usado em casos especiais, de acordo com instruções do PSP.
func (b *Builder) SetMerchantOutroGui(merchantOutroGui string) *Builder {
	b.merchantOutroGui = merchantOutroGui
	return b
}

// SetMerchantOutroKey define a conta no PSP alternativo
func (b *Builder) SetMerchantOutroKey(merchantOutroKey string) *Builder {
	b.merchantOutroKey = merchantOutroKey
	return b
}

// SetTxid define o txid da cobrança; nil limpa o txid.
// No modo dinâmico o txid emitido é sempre "***".
func (b *Builder) SetTxid(txid *string) *Builder {
	if txid == nil {
		b.txid = ""
		return b
	}
	b.txid = *txid
	return b
}

// SetAmount define o valor em centavos; nil zera o valor.
// Para "R$ 5,67" use 567.
func (b *Builder) SetAmount(amount *int) *Builder {
	if amount == nil {
		b.amount = 0
		return b
	}
	b.amount = *amount
	return b
}

// Dynamic indica se o Builder está no modo dinâmico
func (b *Builder) Dynamic() bool { return b.dynamic }

// URL retorna a URL já sem o prefixo de protocolo
func (b *Builder) URL() string { return b.url }

// Txid retorna o txid configurado (não o emitido)
func (b *Builder) Txid() string { return b.txid }

// Amount retorna o valor configurado em centavos
func (b *Builder) Amount() int { return b.amount }

// Payload retorna o código completo do PIX, já com o CRC16.
// Chamadas repetidas com a mesma configuração retornam o mesmo texto.
func (b *Builder) Payload() (string, error) {
	if b.amount < 0 {
		return "", &ConfigurationError{Field: "amount", Err: ErrNegativeAmount}
	}

	w := &sectionWriter{}
	w.write(
		w.section(IDPayloadFormatIndicator, PayloadFormatIndicator),
		b.sectionUniquePayment(w),
		b.sectionMerchantAccountInformation(w),
		b.sectionMerchantAccountInformationOutro(w),
		w.section(IDMerchantCategoryCode, b.merchantCategoryCode),
		w.section(IDTransactionCurrency, CurrencyBRL),
		w.section(IDTransactionAmount, b.transactionAmount()),
		w.section(IDCountryCode, CountryCodeBR),
		w.section(IDMerchantName, b.merchantName),
		w.section(IDMerchantCity, b.merchantCity),
		b.sectionAdditionalDataFieldTemplate(w),
	)
	if w.err != nil {
		return "", w.err
	}

	payload := w.String()
	return payload + ChecksumSection(payload), nil
}

// MustPayload é como Payload, mas entra em pânico se a configuração for inválida
func (b *Builder) MustPayload() string {
	payload, err := b.Payload()
	if err != nil {
		panic(err)
	}
	return payload
}

// String implementa fmt.Stringer. Retorna "" se a configuração for inválida.
func (b *Builder) String() string {
	payload, err := b.Payload()
	if err != nil {
		return ""
	}
	return payload
}

// sectionMerchantAccountInformation monta a seção 26 (GUI, chave, descrição e URL)
func (b *Builder) sectionMerchantAccountInformation(w *sectionWriter) string {
	url := ""
	// url só pode ser colocada se o QR Code for dinâmico
	if b.dynamic {
		url = w.section(IDMerchantAccountInformationURL, b.url)
	}

	return w.nested(IDMerchantAccountInformation,
		w.section(IDMerchantAccountInformationGUI, PixGUI),
		w.section(IDMerchantAccountInformationKey, b.pixKey),
		w.section(IDMerchantAccountInformationDesc, b.description),
		url,
	)
}

// sectionMerchantAccountInformationOutro monta a seção 27, independente do modo
func (b *Builder) sectionMerchantAccountInformationOutro(w *sectionWriter) string {
	return w.nested(IDMerchantAccountInformationOutro,
		w.section(IDMerchantAccountInformationGUI, b.merchantOutroGui),
		w.section(IDMerchantAccountInformationKey, b.merchantOutroKey),
	)
}

// sectionAdditionalDataFieldTemplate monta a seção 62 com o txid.
// Em QR Code dinâmico, o txid é sempre "***".
func (b *Builder) sectionAdditionalDataFieldTemplate(w *sectionWriter) string {
	txid := b.txid
	if b.dynamic {
		txid = DynamicTxID
	}

	return w.nested(IDAdditionalDataFieldTemplate,
		w.section(IDAdditionalDataFieldTemplateTxID, txid),
	)
}

func (b *Builder) sectionUniquePayment(w *sectionWriter) string {
	if !b.uniquePayment {
		return ""
	}
	return w.section(IDPointOfInitiationMethod, UniquePaymentMethod)
}

// transactionAmount retorna o valor formatado; vazio no modo dinâmico
func (b *Builder) transactionAmount() string {
	if b.dynamic {
		return ""
	}
	return FormatAmount(b.amount)
}

// StripScheme remove o prefixo http:// ou https:// de uma URL
func StripScheme(url string) string {
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(url, scheme) {
			return strings.TrimPrefix(url, scheme)
		}
	}
	return url
}
