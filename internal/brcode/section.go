package brcode

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Section cria uma seção (data-object) id + tamanho + valor.
// Valor vazio retorna "" e a seção some do payload (sem id e sem tamanho).
//
// O tamanho é contado em caracteres Unicode, não em bytes: "SÃO PAULO"
// tem 9 caracteres e 10 bytes em UTF-8.
func Section(id, value string) (string, error) {
	if value == "" {
		return "", nil
	}

	size := StringLength(value)
	if size > MaxSectionLength {
		return "", &ConfigurationError{Tag: id, Length: size, Err: ErrSectionTooLong}
	}

	return fmt.Sprintf("%s%02d%s", id, size, value), nil
}

// SectionOf concatena as subseções não vazias e cria a seção resultante
func SectionOf(id string, parts ...string) (string, error) {
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(p)
	}
	return Section(id, b.String())
}

// StringLength conta os caracteres (code points) de uma string.
// Bytes UTF-8 inválidos contam como um caractere cada.
func StringLength(s string) int {
	return utf8.RuneCountInString(s)
}

// sectionWriter acumula seções e guarda o primeiro erro, para que a
// montagem do payload fique linear
type sectionWriter struct {
	b   strings.Builder
	err error
}

// section cria a seção e devolve o texto, sem escrever no buffer
func (w *sectionWriter) section(id, value string) string {
	if w.err != nil {
		return ""
	}
	s, err := Section(id, value)
	if err != nil {
		w.err = err
		return ""
	}
	return s
}

// nested cria uma seção composta por subseções
func (w *sectionWriter) nested(id string, parts ...string) string {
	if w.err != nil {
		return ""
	}
	s, err := SectionOf(id, parts...)
	if err != nil {
		w.err = err
		return ""
	}
	return s
}

// write adiciona seções já montadas ao payload
func (w *sectionWriter) write(sections ...string) {
	if w.err != nil {
		return
	}
	for _, s := range sections {
		w.b.WriteString(s)
	}
}

func (w *sectionWriter) String() string {
	return w.b.String()
}
