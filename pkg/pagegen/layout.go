// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package pagegen

import "fmt"

type Layout string

const (
	LayoutDefault Layout = "default"
	LayoutLanding Layout = "landing"
)

func ParseLayout(raw string) (Layout, error) {
	switch Layout(raw) {
	case LayoutDefault, LayoutLanding:
		return Layout(raw), nil
	case "":
		return LayoutDefault, nil
	}
	return "", fmt.Errorf("unknown layout %q. must be one of ('default', 'landing')", raw)
}

// Component names the Astro layout component a generated page imports.
func (l Layout) Component() string {
	if l == LayoutLanding {
		return "LandingLayout"
	}
	return "BaseLayout"
}
