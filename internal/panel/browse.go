// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package panel

import (
	"github.com/taibuivan/redherring/internal/core/content"
	"github.com/taibuivan/redherring/internal/platform/constants"
	"github.com/taibuivan/redherring/pkg/pagination"
	"github.com/taibuivan/redherring/pkg/slice"
)

// FilterAll is the option value that clears a filter.
const FilterAll = "all"

// Browser pages through a snapshot of one member's entries. The snapshot is
// never re-read: filters and navigation only change which slice is shown.
type Browser struct {
	OwnerName string          `json:"owner_name"`
	Entries   []content.Entry `json:"entries"`
	Filter    content.Filter  `json:"filter"`
	Page      int             `json:"page"`
}

// NewBrowser starts on the first page with no filter.
func NewBrowser(ownerName string, entries []content.Entry) *Browser {
	return &Browser{OwnerName: ownerName, Entries: entries}
}

// Filtered returns the snapshot entries matching both filters, in order.
func (b *Browser) Filtered() []content.Entry {
	return slice.Filter(b.Entries, b.Filter.Match)
}

// Meta returns the clamped page metadata of the filtered set.
func (b *Browser) Meta() pagination.Meta {
	return pagination.NewMeta(b.Page, constants.PageSize, len(b.Filtered()))
}

// Current returns the entries of the current page and its metadata.
func (b *Browser) Current() ([]content.Entry, pagination.Meta) {
	filtered := b.Filtered()
	meta := pagination.NewMeta(b.Page, constants.PageSize, len(filtered))
	start, end := meta.Bounds()
	return filtered[start:end], meta
}

// SetTypeFilter applies (or with [FilterAll], clears) the type filter and
// goes back to the first page.
func (b *Browser) SetTypeFilter(value string) {
	b.Filter.Type = ""
	if value != "" && value != FilterAll {
		b.Filter.Type = content.NormalizeType(value)
	}
	b.Page = 0
}

// SetStatusFilter applies (or with [FilterAll], clears) the status filter
// and goes back to the first page.
func (b *Browser) SetStatusFilter(value string) {
	b.Filter.Status = ""
	if value != "" && value != FilterAll {
		b.Filter.Status = content.NormalizeStatus(value)
	}
	b.Page = 0
}

// Next advances one page, stopping at the last one.
func (b *Browser) Next() {
	meta := b.Meta()
	b.Page = pagination.Clamp(meta.Page+1, meta.TotalPages)
}

// Prev goes back one page, stopping at the first one.
func (b *Browser) Prev() {
	meta := b.Meta()
	b.Page = pagination.Clamp(meta.Page-1, meta.TotalPages)
}
