// Package normalize provides the canonical string normalization for catalog
// keys and query text.
//
// Catalog keys are normalized once at build time and query text is normalized
// with the same functions at search time, so every comparison happens in the
// same key space. Both functions are pure and total: they never fail, never
// block, and return the empty string for empty input.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Barcode reduces s to its digit characters only.
//
// Full-width digits (U+FF10..U+FF19), common in Korean scanner output, are
// folded to their ASCII forms first so they survive the digits-only pass.
// Leading zeros are preserved: this is character filtering, not a numeric
// reinterpretation, so "0012" stays "0012".
func Barcode(s string) string {
	if s == "" {
		return ""
	}

	folded := width.Fold.String(s)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Name reduces s to a whitespace-free, case-folded comparison key.
//
// All whitespace is removed rather than collapsed, so "진라면 120g" and
// "진 라면 120G" share the same key. Full-width Latin letters and digits are
// width-folded before case-folding.
func Name(s string) string {
	if s == "" {
		return ""
	}

	folded := width.Fold.String(s)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
