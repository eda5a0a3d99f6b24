// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package composeopts

import (
	"fmt"
	"regexp"

	"github.com/southwellmedia/create-velocity-astro/pkg/pagegen"
	"github.com/southwellmedia/create-velocity-astro/pkg/pkginstall"
	"github.com/southwellmedia/create-velocity-astro/pkg/resolver"
)

// projectNamePattern follows npm package naming; the name also becomes the
// target directory name when no explicit path is given.
var projectNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Options is the single input of the composition pipeline.
type Options struct {
	ProjectName string
	// TargetPath is the directory the project is composed into
	TargetPath string

	// Demo false means demo content is stripped and replaced by the minimal
	// base overlay
	Demo          bool
	Selection     resolver.Selection
	MultiLanguage bool

	// Pages to generate on top of the template, raw names as given by the user
	Pages  []string
	Layout pagegen.Layout

	PackageManager pkginstall.PackageManager
	SkipInstall    bool
	SkipGit        bool
}

func (o *Options) Validate() error {
	if o.ProjectName == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if !projectNamePattern.MatchString(o.ProjectName) {
		return fmt.Errorf("invalid project name %q: must start with a letter or digit and contain only lowercase letters, digits, '.', '_' and '-'", o.ProjectName)
	}
	if o.TargetPath == "" {
		return fmt.Errorf("target path must not be empty")
	}
	return nil
}
