// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package registry

import (
	"context"
	"fmt"

	"github.com/southwellmedia/create-velocity-astro/pkg/registry/embedded"
	"github.com/southwellmedia/create-velocity-astro/pkg/registry/registryremote"
	"github.com/southwellmedia/create-velocity-astro/pkg/scaffoldconfig"
)

// Store fetches the module registry at most once per process. The cached
// value is handed to callers as-is; callers treat it as immutable and pass it
// down the call chain rather than reaching back into the store.
type Store struct {
	config *scaffoldconfig.Config
	cached *Registry
}

func NewStore(config *scaffoldconfig.Config) *Store {
	return &Store{config: config}
}

func (s *Store) Get(ctx context.Context) (*Registry, error) {
	if s.cached != nil {
		return s.cached, nil
	}

	contents, err := s.fetchContents(ctx)
	if err != nil {
		return nil, err
	}

	reg, err := ReadRegistryContents(contents)
	if err != nil {
		return nil, err
	}
	if err := reg.ValidateAcyclic(); err != nil {
		return nil, err
	}

	s.cached = reg
	return reg, nil
}

// Clear drops the cached registry so the next Get refetches.
func (s *Store) Clear() {
	s.cached = nil
}

func (s *Store) fetchContents(ctx context.Context) ([]byte, error) {
	if s.config.RegistryURL == "" {
		return embedded.RegistryYaml, nil
	}

	contents, err := registryremote.NewFromConfig(s.config).Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}
	return contents, nil
}
