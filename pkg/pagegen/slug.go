// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package pagegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
	"github.com/southwellmedia/create-velocity-astro/pkg/utils/stringset"
)

// ReservedSlugs are routes the theme itself owns; generating a page over one
// of them would clobber the home, listing, error or feed route.
var ReservedSlugs = stringset.New("index", "blog", "projects", "404", "rss")

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Page is the sanitized form of a requested page name.
type Page struct {
	// lowercase hyphen-delimited slug, e.g. "contact-us"
	Slug string
	// configuration-key-safe identifier, e.g. "contact_us"
	RouteId string
	// display title, e.g. "Contact Us"
	Title string
}

// NewPage sanitizes a raw page name. Reserved and empty names are rejected.
func NewPage(rawName string) (Page, error) {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(rawName), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return Page{}, fmt.Errorf("page name %q contains no usable characters", rawName)
	}
	if ReservedSlugs.Contains(slug) {
		return Page{}, fmt.Errorf("page name %q is reserved", slug)
	}

	title := strings.Join(lo.Map(strings.Split(slug, "-"), func(seg string, _ int) string {
		return strings.ToUpper(seg[:1]) + seg[1:]
	}), " ")

	return Page{
		Slug:    slug,
		RouteId: strings.ReplaceAll(slug, "-", "_"),
		Title:   title,
	}, nil
}
