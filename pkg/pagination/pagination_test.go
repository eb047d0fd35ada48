// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/redherring/pkg/pagination"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  int
	}{
		{"empty_has_one_page", 0, 1},
		{"exact_multiple", 20, 2},
		{"partial_last_page", 25, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.TotalPages(tt.total, 10))
		})
	}
}

func TestNewMeta_ClampsAndBounds(t *testing.T) {
	meta := pagination.NewMeta(7, 10, 25)
	assert.Equal(t, 2, meta.Page)

	start, end := meta.Bounds()
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)
	assert.True(t, meta.HasPrev())
	assert.False(t, meta.HasNext())

	first := pagination.NewMeta(-3, 10, 25)
	assert.Equal(t, 0, first.Page)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())
}
