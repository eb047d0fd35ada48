// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package split parses list-shaped user input (comma-separated titles,
// select-menu values) into typed slices. Blank and malformed entries are
// dropped silently.
package split

import (
	"strconv"
	"strings"
)

// Comma splits a comma-separated string into trimmed, non-empty segments.
func Comma(val string) []string {
	if strings.TrimSpace(val) == "" {
		return nil
	}

	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// IDs parses decimal identifiers, ignoring entries that are not positive
// integers. Duplicates are kept once, in first-seen order.
func IDs(vals []string) []int64 {
	var res []int64
	seen := make(map[int64]struct{}, len(vals))
	for _, v := range vals {
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
