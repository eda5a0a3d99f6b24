// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package composer

import "path/filepath"

const (
	// ScaffoldDir holds the overlay trees shipped inside the template itself.
	// It is applied during composition and stripped from the final project.
	ScaffoldDir = ".scaffold"
)

var (
	// I18nOverlayDir is the locale overlay: localized routing scaffold plus
	// localized variants of the demo pages.
	I18nOverlayDir = filepath.Join(ScaffoldDir, "overlays", "i18n")

	// MinimalOverlayDir restores placeholder pages after demo removal.
	MinimalOverlayDir = filepath.Join(ScaffoldDir, "overlays", "minimal")

	// retrievalArtifacts must not leak from template retrieval into the
	// generated project.
	retrievalArtifacts = []string{
		".git",
		"package-lock.json",
		"pnpm-lock.yaml",
		"yarn.lock",
		"bun.lockb",
	}

	// OptionalModuleDirs are the only trees subject to selection filtering.
	OptionalModuleDirs = []string{
		"src/components/modules",
		"src/content/modules",
	}

	// demoContentPaths covers both the non-localized and localized path
	// shapes, so demo removal is correct whether or not the locale overlay
	// was applied first.
	demoContentPaths = []string{
		"src/content/blog",
		"src/content/projects",
		"src/pages/blog",
		"src/pages/projects",
		"src/pages/[lang]/blog",
		"src/pages/[lang]/projects",
		"public/images/demo",
	}

	// contentDirs the base template expects to exist even when empty
	contentDirs = []string{
		"src/content/blog",
		"src/content/projects",
	}
)
