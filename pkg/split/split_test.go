// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package split_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/redherring/pkg/split"
)

func TestComma(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"skips_blank_segments", "A, B, ,C", []string{"A", "B", "C"}},
		{"single", "Berserk", []string{"Berserk"}},
		{"only_separators", " , ,", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, split.Comma(tt.input))
		})
	}
}

func TestIDs(t *testing.T) {
	got := split.IDs([]string{"3", "x", "7", "-1", "3", " 9 "})
	assert.Equal(t, []int64{3, 7, 9}, got)
	assert.Nil(t, split.IDs(nil))
}
