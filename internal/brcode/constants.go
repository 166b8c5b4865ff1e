package brcode

// Identificadores dos data-objects do BR Code (Manual do BR Code, Bacen)
const (
	IDPayloadFormatIndicator          = "00"
	IDPointOfInitiationMethod         = "01"
	IDMerchantAccountInformation      = "26"
	IDMerchantAccountInformationOutro = "27"
	IDMerchantAccountInformationGUI   = "00"
	IDMerchantAccountInformationKey   = "01"
	IDMerchantAccountInformationDesc  = "02"
	IDMerchantAccountInformationURL   = "25"
	IDMerchantCategoryCode            = "52"
	IDTransactionCurrency             = "53"
	IDTransactionAmount               = "54"
	IDCountryCode                     = "58"
	IDMerchantName                    = "59"
	IDMerchantCity                    = "60"
	IDAdditionalDataFieldTemplate     = "62"
	IDAdditionalDataFieldTemplateTxID = "05"
	IDCRC16                           = "63"
)

// Valores fixos do arranjo PIX
const (
	PayloadFormatIndicator = "01"
	PixGUI                 = "BR.GOV.BCB.PIX"
	CurrencyBRL            = "986" // ISO 4217
	CountryCodeBR          = "BR"
	UniquePaymentMethod    = "12"
	DynamicTxID            = "***"

	DefaultMerchantCategoryCode = "0000"

	// crcSectionPrefix é o id + tamanho da seção do CRC, sempre "6304"
	crcSectionPrefix = IDCRC16 + "04"

	// MaxSectionLength é o maior tamanho representável em dois dígitos
	MaxSectionLength = 99
)
