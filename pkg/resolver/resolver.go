// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import (
	"log/slog"

	"github.com/samber/lo"
	"github.com/southwellmedia/create-velocity-astro/pkg/registry"
	"github.com/southwellmedia/create-velocity-astro/pkg/utils/stringset"
)

// ResolvedSet is the transitive closure of a Selection against the registry.
// It is recomputed on every Resolve call and never mutated afterwards.
type ResolvedSet struct {
	Modules          stringset.StringSet
	Utils            stringset.StringSet
	Files            stringset.StringSet
	ExternalPackages stringset.StringSet
}

func newResolvedSet() *ResolvedSet {
	return &ResolvedSet{
		Modules:          stringset.New(),
		Utils:            stringset.New(),
		Files:            stringset.New(),
		ExternalPackages: stringset.New(),
	}
}

// Resolve computes the closed set of modules, utility bundles, files and
// external packages required by a selection. Module dependencies are expanded
// depth-first, dependency before dependent, each module at most once. An id
// absent from the registry contributes nothing and is only warned about;
// callers wanting a hard error run ValidateSelection first.
func Resolve(sel Selection, reg *registry.Registry) *ResolvedSet {
	result := newResolvedSet()

	var roots []string
	switch sel.Mode {
	case SelectNone:
		return result
	case SelectAll:
		roots = lo.Keys(reg.Modules)
	case SelectCategories:
		wanted := stringset.New(sel.Categories...)
		roots = lo.FilterMap(lo.Entries(reg.Modules), func(e lo.Entry[string, *registry.Module], _ int) (string, bool) {
			return e.Key, wanted.Contains(e.Value.Category)
		})
	case SelectIndividual:
		roots = sel.Modules
	}

	for _, id := range roots {
		expandModule(id, reg, result)
	}

	for u := range result.Utils {
		bundle, ok := reg.Utils[u]
		if !ok {
			slog.Warn("unknown utility bundle in module dependencies, skipping", "bundle", u)
			continue
		}
		result.Files.AddAll(bundle.Files...)
		result.ExternalPackages.AddAll(bundle.ExternalPackages...)
	}

	return result
}

func expandModule(id string, reg *registry.Registry, acc *ResolvedSet) {
	if acc.Modules.Contains(id) {
		return
	}

	m, ok := reg.Modules[id]
	if !ok {
		slog.Warn("unknown module id in selection, skipping", "module", id)
		return
	}

	// dependencies first, so they land in the result before their dependent
	for _, dep := range m.Dependencies.Modules {
		expandModule(dep, reg, acc)
	}

	acc.Utils.AddAll(m.Dependencies.Utils...)
	acc.Files.AddAll(m.Files...)
	acc.Modules.Add(id)
}

// ModulesInCategory lists the ids of every module in the given category.
func ModulesInCategory(reg *registry.Registry, categoryId string) []string {
	return lo.FilterMap(lo.Entries(reg.Modules), func(e lo.Entry[string, *registry.Module], _ int) (string, bool) {
		return e.Key, e.Value.Category == categoryId
	})
}
