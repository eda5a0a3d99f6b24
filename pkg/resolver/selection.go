// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import (
	"fmt"
	"strings"
)

type SelectionMode string

const (
	SelectNone       SelectionMode = "none"
	SelectAll        SelectionMode = "all"
	SelectCategories SelectionMode = "categories"
	SelectIndividual SelectionMode = "individual"
)

// Selection is the user's declared intent for which optional modules to
// include. Categories is meaningful only in SelectCategories mode, Modules
// only in SelectIndividual mode.
type Selection struct {
	Mode       SelectionMode
	Categories []string
	Modules    []string
}

// ParseSelection turns the CLI's --modules value into a Selection.
// Accepted forms: "none", "all", "cat:<id>[,<id>...]", "<id>[,<id>...]".
func ParseSelection(raw string) (Selection, error) {
	switch raw {
	case "", string(SelectAll):
		return Selection{Mode: SelectAll}, nil
	case string(SelectNone):
		return Selection{Mode: SelectNone}, nil
	}

	if rest, ok := strings.CutPrefix(raw, "cat:"); ok {
		cats := splitIds(rest)
		if len(cats) == 0 {
			return Selection{}, fmt.Errorf("no category ids given in %q", raw)
		}
		return Selection{Mode: SelectCategories, Categories: cats}, nil
	}

	ids := splitIds(raw)
	if len(ids) == 0 {
		return Selection{}, fmt.Errorf("no module ids given in %q", raw)
	}
	return Selection{Mode: SelectIndividual, Modules: ids}, nil
}

func splitIds(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
