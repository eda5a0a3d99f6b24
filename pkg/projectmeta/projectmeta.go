// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

// Package projectmeta rewrites the generated project's package.json once the
// template is detached from its origin.
package projectmeta

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	FileName = "package.json"

	// fresh projects always start over from the same version
	InitialVersion = "0.1.0"
)

// fields that are meaningless once the project no longer tracks the template
// repository
var originFields = []string{"repository", "bugs", "homepage"}

type PackageJson struct {
	path   string
	fields map[string]any
}

func Read(projectPath string) (*PackageJson, error) {
	path := filepath.Join(projectPath, FileName)
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if err := json.Unmarshal(contents, &fields); err != nil {
		return nil, fmt.Errorf("malformed %s: %w", FileName, err)
	}
	return &PackageJson{path: path, fields: fields}, nil
}

// Version parses the manifest's version field. Used to record which template
// version a project was composed from before Detach resets it.
func (p *PackageJson) Version() (*semver.Version, error) {
	raw, ok := p.fields["version"].(string)
	if !ok {
		return nil, fmt.Errorf("%s has no version field", FileName)
	}
	return semver.NewVersion(raw)
}

// Detach renames the package, resets its version and strips the fields that
// pointed back at the template's own repository.
func (p *PackageJson) Detach(projectName string) {
	p.fields["name"] = projectName
	p.fields["version"] = InitialVersion
	for _, f := range originFields {
		delete(p.fields, f)
	}
}

// EnsureDependencies merges external package identifiers into the
// dependencies map so the install step picks up what the kept modules import.
// Identifiers are either bare names (pinned to "latest") or name@range.
// Already-declared dependencies keep their declared range.
func (p *PackageJson) EnsureDependencies(identifiers []string) {
	deps, ok := p.fields["dependencies"].(map[string]any)
	if !ok {
		deps = map[string]any{}
		p.fields["dependencies"] = deps
	}

	for _, id := range identifiers {
		name, rng := splitIdentifier(id)
		if _, exists := deps[name]; !exists {
			deps[name] = rng
		}
	}
}

func (p *PackageJson) Write() error {
	contents, err := json.MarshalIndent(p.fields, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, append(contents, '\n'), 0o644)
}

// splitIdentifier splits "name@range" at the last '@', leaving the leading
// '@' of scoped packages alone.
func splitIdentifier(id string) (name, rng string) {
	if at := strings.LastIndex(id, "@"); at > 0 {
		return id[:at], id[at+1:]
	}
	return id, "latest"
}
