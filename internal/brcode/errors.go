package brcode

import (
	"errors"
	"fmt"
)

var (
	// ErrSectionTooLong indica um valor que não cabe no campo de tamanho de dois dígitos
	ErrSectionTooLong = errors.New("brcode: seção excede 99 caracteres")

	// ErrNegativeAmount indica um valor de cobrança negativo
	ErrNegativeAmount = errors.New("brcode: valor negativo")
)

// ConfigurationError indica uma configuração que não pode ser codificada em BR Code.
// O payload nunca é gerado parcialmente: ou sai completo, ou sai este erro.
type ConfigurationError struct {
	Tag    string // id do data-object, quando aplicável
	Field  string // campo da configuração, quando aplicável
	Length int
	Err    error
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Tag != "":
		return fmt.Sprintf("configuração inválida na seção %s (%d caracteres): %v", e.Tag, e.Length, e.Err)
	case e.Field != "":
		return fmt.Sprintf("configuração inválida no campo '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("configuração inválida: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError retorna true se o erro (ou algum erro envolvido) for um ConfigurationError
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
