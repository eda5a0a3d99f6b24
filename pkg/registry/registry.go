// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package registry

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/southwellmedia/create-velocity-astro/pkg/schema"
)

var ErrInvalidRegistry = fmt.Errorf("invalid module registry")

// ErrRegistryUnavailable wraps any failure to retrieve the registry document
// from its configured source.
var ErrRegistryUnavailable = fmt.Errorf("registry unavailable")

const (
	RegistryKind       = "ModuleRegistry"
	RegistryVersion    = "v1"
	RegistryAPIVersion = schema.APIGroup + "/" + RegistryVersion
)

type Category struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// UtilityBundle is a shared helper referenced by one or more modules:
// files copied into the project plus npm packages the files import.
type UtilityBundle struct {
	Name             string   `yaml:"name"`
	Description      string   `yaml:"description,omitempty"`
	Files            []string `yaml:"files"`
	ExternalPackages []string `yaml:"externalPackages,omitempty"`
}

type Dependencies struct {
	Utils   []string `yaml:"utils,omitempty"`
	Modules []string `yaml:"modules,omitempty"`
}

type Module struct {
	Name         string       `yaml:"name"`
	Category     string       `yaml:"category"`
	Files        []string     `yaml:"files"`
	Dependencies Dependencies `yaml:"dependencies,omitempty"`
	Premium      bool         `yaml:"premium,omitempty"`
}

type Registry struct {
	schema.ManifestMeta `yaml:",inline"`

	Categories map[string]*Category      `yaml:"categories"`
	Utils      map[string]*UtilityBundle `yaml:"utils"`
	Modules    map[string]*Module        `yaml:"modules"`
}

func ReadRegistryContents(contents []byte) (*Registry, error) {
	var r Registry
	if err := yaml.Unmarshal(contents, &r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}

	expected := schema.ManifestMeta{
		APIVersion: RegistryAPIVersion,
		Kind:       RegistryKind,
	}
	if err := expected.ValidateSchema(r.ManifestMeta); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegistry, err)
	}

	if r.Modules == nil {
		return nil, fmt.Errorf("%w: missing required field 'modules'", ErrInvalidRegistry)
	}
	for id, m := range r.Modules {
		if m.Category == "" {
			return nil, fmt.Errorf("%w: module %q is missing a category", ErrInvalidRegistry, id)
		}
		if _, ok := r.Categories[m.Category]; !ok {
			return nil, fmt.Errorf("%w: module %q references unknown category %q", ErrInvalidRegistry, id, m.Category)
		}
		for _, u := range m.Dependencies.Utils {
			if _, ok := r.Utils[u]; !ok {
				return nil, fmt.Errorf("%w: module %q references unknown utility bundle %q", ErrInvalidRegistry, id, u)
			}
		}
	}

	return &r, nil
}

// ValidateAcyclic rejects registries whose module-dependency relation is not a
// DAG. Resolution relies on a visited set that would otherwise silently
// truncate a cycle instead of reporting it.
func (r *Registry) ValidateAcyclic() error {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[string]int, len(r.Modules))

	var visit func(id string, trail []string) error
	visit = func(id string, trail []string) error {
		switch state[id] {
		case done:
			return nil
		case inProgress:
			return fmt.Errorf("%w: module dependency cycle: %v -> %s", ErrInvalidRegistry, trail, id)
		}
		state[id] = inProgress
		if m, ok := r.Modules[id]; ok {
			for _, dep := range m.Dependencies.Modules {
				if err := visit(dep, append(trail, id)); err != nil {
					return err
				}
			}
		}
		state[id] = done
		return nil
	}

	for id := range r.Modules {
		if err := visit(id, nil); err != nil {
			return err
		}
	}
	return nil
}
