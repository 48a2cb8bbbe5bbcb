package normalize

import "unicode"

// ContainsDevanagari reports whether any rune of s falls in the Devanagari
// block. It is an auxiliary signal carried through for diagnostics; routing
// and reply-language selection do not consult it.
func ContainsDevanagari(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Devanagari, r) {
			return true
		}
	}
	return false
}
