// Package texto normaliza textos para búsqueda: minúsculas y sin diacríticos,
// de modo que "algodon" encuentre "Algodón".
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizar devuelve el texto en minúsculas y sin marcas diacríticas.
func Normalizar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Contiene indica si s contiene sub, sin distinguir mayúsculas ni acentos.
// Un sub vacío siempre coincide.
func Contiene(s, sub string) bool {
	if sub == "" {
		return true
	}
	return strings.Contains(Normalizar(s), Normalizar(sub))
}
