// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/southwellmedia/create-velocity-astro/pkg/registry"
	"github.com/southwellmedia/create-velocity-astro/pkg/utils/stringset"
)

// ValidateSelection reports the ids an explicit selection names that the
// registry doesn't know about, and premium modules requested without a
// license key. Run before any filesystem mutation so a typo surfaces as a
// usable error instead of a silently smaller project.
func ValidateSelection(sel Selection, reg *registry.Registry, hasLicense bool) error {
	var errs []error

	switch sel.Mode {
	case SelectCategories:
		for _, c := range sel.Categories {
			if _, ok := reg.Categories[c]; !ok {
				errs = append(errs, fmt.Errorf("unknown category %q. known categories: %v", c, stringset.New(lo.Keys(reg.Categories)...).Sorted()))
			}
		}
	case SelectIndividual:
		for _, id := range sel.Modules {
			m, ok := reg.Modules[id]
			if !ok {
				errs = append(errs, fmt.Errorf("unknown module %q. run 'create-velocity-astro modules' to list available modules", id))
				continue
			}
			if m.Premium && !hasLicense {
				errs = append(errs, fmt.Errorf("module %q is a premium module and requires a license key", id))
			}
		}
	}

	return errors.Join(errs...)
}

// Stats summarizes a resolved set for user-facing output.
type Stats struct {
	Modules          int
	Files            int
	ExternalPackages int
	Categories       []string
}

func SelectionStats(rs *ResolvedSet, reg *registry.Registry) Stats {
	categories := stringset.New()
	for id := range rs.Modules {
		if m, ok := reg.Modules[id]; ok {
			categories.Add(m.Category)
		}
	}
	return Stats{
		Modules:          len(rs.Modules),
		Files:            len(rs.Files),
		ExternalPackages: len(rs.ExternalPackages),
		Categories:       categories.Sorted(),
	}
}
