package dialect

import "unicode"

// majorCategories maps a Unicode general-category major letter ("L", "N",
// "Z", "C", "S", "P", "M") to the stdlib range table covering every minor
// category under it. unicode.Categories already keys both major and minor
// category tables by name, so a major-letter lookup is a direct hit.
var majorCategories = unicode.Categories

// hasCategory reports whether r belongs to any of the Unicode general
// categories whose major letter appears in prefixes (e.g. "LN" accepts
// letters and numbers). An empty prefixes string matches nothing, mirroring
// the Python original's `unicodedata.category(c)[0] in category_string`.
func hasCategory(r rune, prefixes string) bool {
	for _, p := range prefixes {
		table, ok := majorCategories[string(p)]
		if !ok {
			continue
		}
		if unicode.Is(table, r) {
			return true
		}
	}
	return false
}

// IsIdentifierStart reports whether r may begin an identifier under this
// dialect: either it is in the configured start category, or it is one of
// the dialect's explicit extra start characters.
func (d *Dialect) IsIdentifierStart(r rune) bool {
	if hasCategory(r, d.IdentifierStartCategory) {
		return true
	}
	return containsRune(d.IdentifierStartCharacters, r)
}

// IsIdentifierPart reports whether r may continue an identifier under this
// dialect, analogous to IsIdentifierStart.
func (d *Dialect) IsIdentifierPart(r rune) bool {
	if hasCategory(r, d.IdentifierCategory) {
		return true
	}
	return containsRune(d.IdentifierCharacters, r)
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
