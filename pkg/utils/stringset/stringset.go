// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package stringset

import "sort"

type StringSet map[string]struct{}

func New(items ...string) StringSet {
	ss := make(StringSet, len(items))
	for _, s := range items {
		ss[s] = struct{}{}
	}
	return ss
}

func (ss StringSet) Add(s string) StringSet {
	ss[s] = struct{}{}
	return ss
}

func (ss StringSet) AddAll(items ...string) StringSet {
	for _, s := range items {
		ss[s] = struct{}{}
	}
	return ss
}

func (ss StringSet) Contains(s string) bool {
	_, ok := ss[s]
	return ok
}

// Sorted returns the members as a deterministic slice.
func (ss StringSet) Sorted() []string {
	out := make([]string, 0, len(ss))
	for s := range ss {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
