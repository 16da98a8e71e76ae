package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold devuelve una versión en minúsculas y sin diacríticos de s,
// para comparar nombres de cortes y categorías ("Vacío" == "vacio").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Equal compara dos nombres ignorando mayúsculas, espacios y acentos.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Contains informa si folded(s) contiene folded(substr).
func Contains(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
