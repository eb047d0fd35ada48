// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package fold builds comparison keys from free-text user input.
//
// # Usage
//
// Keys are used to match enumerated values typed by members regardless of
// case, accents, or surrounding whitespace ("  SERIE " and "série" share
// the key "serie").
package fold

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key converts an arbitrary Unicode string into an accent-free, lowercase
// comparison key with inner whitespace collapsed.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Collapses whitespace runs and trims both ends.
func Key(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	return strings.Join(strings.Fields(strings.ToLower(result)), " ")
}

// Caseless folds case but keeps accents, so "Élite" and "élite" share a
// form while "elite" does not. Input is NFC-normalized first so composed
// and decomposed accents compare equal.
func Caseless(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Capitalize trims s, upper-cases its first letter and lower-cases the rest.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
