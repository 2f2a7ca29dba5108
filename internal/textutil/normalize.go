package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName returns the NFC form of a file name so names typed on one
// platform compare equal to names created on another (macOS stores NFD).
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// SameName reports whether two file names are equal after normalisation.
func SameName(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}
