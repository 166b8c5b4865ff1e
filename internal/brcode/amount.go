package brcode

import (
	"strconv"
	"strings"
)

// FormatAmount formata um valor em centavos no formato "9.99".
// Por exemplo, 567 vira "5.67" e 5 vira "0.05".
// Valores negativos não são suportados; use o Builder, que os rejeita.
func FormatAmount(amount int) string {
	s := strconv.Itoa(amount)
	if len(s) < 3 {
		s = strings.Repeat("0", 3-len(s)) + s
	}
	return s[:len(s)-2] + "." + s[len(s)-2:]
}
