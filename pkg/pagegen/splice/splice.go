// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

// Package splice performs anchor-based text edits on generated source files.
// It deliberately works on substrings instead of a parsed syntax tree; the
// narrow surface here is what a future structural rewriter would replace.
package splice

import (
	"regexp"
	"strconv"
	"strings"
)

// InsertBefore inserts text immediately before the first occurrence of
// anchor. The second return is false when the anchor is absent, in which case
// content is returned unchanged.
func InsertBefore(content, anchor, text string) (string, bool) {
	idx := strings.Index(content, anchor)
	if idx < 0 {
		return content, false
	}
	return content[:idx] + text + content[idx:], true
}

// InsertBeforeLast is InsertBefore against the last occurrence of anchor,
// for files whose insertion point is the closing delimiter of their
// outermost structure.
func InsertBeforeLast(content, anchor, text string) (string, bool) {
	idx := strings.LastIndex(content, anchor)
	if idx < 0 {
		return content, false
	}
	return content[:idx] + text + content[idx:], true
}

// Contains reports whether needle occurs anywhere in content. A match inside
// a comment or string literal counts too; duplicate detection by substring is
// an accepted limitation of the text-based approach.
func Contains(content, needle string) bool {
	return strings.Contains(content, needle)
}

// MaxIntegerAfter scans every match of pattern (which must have exactly one
// capture group holding an integer) and returns the maximum captured value.
// ok is false when the pattern matches nowhere.
func MaxIntegerAfter(content string, pattern *regexp.Regexp) (max int, ok bool) {
	for _, m := range pattern.FindAllStringSubmatch(content, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if !ok || n > max {
			max = n
			ok = true
		}
	}
	return max, ok
}
