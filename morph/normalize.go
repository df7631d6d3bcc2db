package morph

import "strings"

// foldReplacer merges ё into е, mirroring how Russian text is usually
// typed without the diaeresis.
var foldReplacer = strings.NewReplacer(
	"ё", "е",
	"Ё", "Е",
)

// Fold returns the lookup key for s: lower-cased with ё folded to е.
func Fold(s string) string {
	return foldReplacer.Replace(strings.ToLower(s))
}
