package translatable

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// CanonicalLocale valida un código de locale BCP 47 y devuelve su forma canónica
// ("EN" -> "en", "pt_br" -> "pt-BR"). Solo normaliza mayúsculas y separadores: los códigos
// obsoletos o de macrolengua se conservan ("tl" no pasa a "fil", "iw" no pasa a "he").
func CanonicalLocale(locale string) (string, error) {
	s := strings.TrimSpace(locale)
	if s == "" {
		return "", fmt.Errorf("%w: locale is required", ErrInvalidArgument)
	}
	tag, err := language.Raw.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: invalid locale '%s'", ErrInvalidArgument, locale)
	}
	if tag == language.Und {
		return "", fmt.Errorf("%w: invalid locale '%s'", ErrInvalidArgument, locale)
	}
	return tag.String(), nil
}
