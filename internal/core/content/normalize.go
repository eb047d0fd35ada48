// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import "github.com/taibuivan/redherring/pkg/fold"

// # Normalization
//
// Lookups are keyed by [fold.Key], so case, accents and surrounding
// whitespace do not matter. Unknown input is not rejected: it is stored
// with only its first letter capitalized.

var typeAliases = map[string]Type{
	"serie":   TypeSeries,
	"anime":   TypeAnime,
	"webtoon": TypeWebtoon,
	"manga":   TypeManga,
}

var statusAliases = map[string]Status{
	"a voir":   StatusToWatch,
	"en cours": StatusInProgress,
	"termine":  StatusDone,
}

// NormalizeType maps free text to a canonical [Type].
func NormalizeType(input string) Type {
	if canonical, ok := typeAliases[fold.Key(input)]; ok {
		return canonical
	}
	return Type(fold.Capitalize(input))
}

// NormalizeStatus maps free text to a canonical [Status].
func NormalizeStatus(input string) Status {
	if canonical, ok := statusAliases[fold.Key(input)]; ok {
		return canonical
	}
	return Status(fold.Capitalize(input))
}

// IsKnown reports whether t is exactly one of the canonical types.
func (t Type) IsKnown() bool {
	canonical, ok := typeAliases[fold.Key(string(t))]
	return ok && canonical == t
}

// IsKnown reports whether s is exactly one of the canonical statuses.
func (s Status) IsKnown() bool {
	canonical, ok := statusAliases[fold.Key(string(s))]
	return ok && canonical == s
}
