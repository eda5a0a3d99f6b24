// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pagegen synthesizes page files for a composed project and splices
// the matching entries into the generated route tables and translation files.
package pagegen

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"text/template"

	"github.com/southwellmedia/create-velocity-astro/pkg/pagegen/splice"
	"github.com/southwellmedia/create-velocity-astro/pkg/utils"
)

const (
	PagesDir           = "src/pages"
	RoutesFile         = "src/config/routes.ts"
	I18nRoutesFile     = "src/config/routes.i18n.ts"
	TranslationsDir    = "src/i18n/translations"
	routeTableAnchor   = "} as const;"
	translationsAnchor = "};"

	// navigation order advances in steps of 10 so entries can later be
	// inserted between existing ones without renumbering
	navOrderStep = 10
)

var navOrderPattern = regexp.MustCompile(`order:\s*(\d+)`)

type Generator struct {
	projectPath   string
	layout        Layout
	multiLanguage bool
}

func New(projectPath string, layout Layout, multiLanguage bool) *Generator {
	return &Generator{
		projectPath:   projectPath,
		layout:        layout,
		multiLanguage: multiLanguage,
	}
}

// GeneratePages writes one page file per requested name (two in
// multi-language mode) and splices each page's route and translation entries
// into the generated configuration files. All names are sanitized and
// validated before anything is written, so a reserved name produces zero
// generated files. The returned paths are relative to the project root.
func (g *Generator) GeneratePages(pageNames []string) ([]string, error) {
	var errs []error
	pages := make([]Page, 0, len(pageNames))
	for _, name := range pageNames {
		p, err := NewPage(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pages = append(pages, p)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	var generated []string
	for _, p := range pages {
		paths, err := g.generatePage(p)
		if err != nil {
			return generated, fmt.Errorf("failed to generate page %q: %w", p.Slug, err)
		}
		generated = append(generated, paths...)
	}
	return generated, nil
}

func (g *Generator) generatePage(p Page) ([]string, error) {
	params := pageParams{
		Page:            p,
		LayoutComponent: g.layout.Component(),
		Languages:       SupportedLanguages,
		DefaultLanguage: DefaultLanguage,
	}

	pagePath := filepath.Join(PagesDir, p.Slug+".astro")
	if err := g.writeRendered(pagePath, pageBodyTmpl, params); err != nil {
		return nil, err
	}
	written := []string{pagePath}

	if err := g.spliceRouteEntry(RoutesFile, routeEntryTmpl, params); err != nil {
		return nil, err
	}

	if !g.multiLanguage {
		return written, nil
	}

	// catch-all segment named after the route identifier, so the localized
	// slug resolves as a route parameter
	localizedPath := filepath.Join(PagesDir, "[lang]", fmt.Sprintf("[...%s].astro", p.RouteId))
	if err := g.writeRendered(localizedPath, localizedPageBodyTmpl, params); err != nil {
		return nil, err
	}
	written = append(written, localizedPath)

	if err := g.spliceRouteEntry(I18nRoutesFile, localizedRouteEntryTmpl, params); err != nil {
		return nil, err
	}
	if err := g.spliceTranslations(params); err != nil {
		return nil, err
	}

	return written, nil
}

func (g *Generator) writeRendered(relPath string, tmpl *template.Template, params pageParams) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return err
	}
	absPath := filepath.Join(g.projectPath, relPath)
	if err := utils.EnsureDirs(filepath.Dir(absPath)); err != nil {
		return err
	}
	return os.WriteFile(absPath, buf.Bytes(), 0o644)
}

// spliceRouteEntry inserts a new route entry before the table's closing
// anchor. A missing file or anchor is tolerated (the table may have been
// hand-edited or removed); a route identifier already present anywhere in the
// file means the entry was spliced before and is skipped.
func (g *Generator) spliceRouteEntry(relPath string, entryTmpl *template.Template, params pageParams) error {
	absPath := filepath.Join(g.projectPath, relPath)
	contents, err := os.ReadFile(absPath)
	if os.IsNotExist(err) {
		slog.Debug("route table not present, skipping splice", "file", relPath)
		return nil
	} else if err != nil {
		return err
	}
	table := string(contents)

	if splice.Contains(table, params.RouteId+":") {
		slog.Debug("route already present, skipping splice", "file", relPath, "route", params.RouteId)
		return nil
	}

	maxOrder, _ := splice.MaxIntegerAfter(table, navOrderPattern)
	params.Order = maxOrder + navOrderStep

	var buf bytes.Buffer
	if err := entryTmpl.Execute(&buf, params); err != nil {
		return err
	}

	updated, ok := splice.InsertBefore(table, routeTableAnchor, buf.String())
	if !ok {
		slog.Debug("route table anchor not found, skipping splice", "file", relPath)
		return nil
	}

	return os.WriteFile(absPath, []byte(updated), 0o644)
}

// spliceTranslations adds a navigation label and a title/description group to
// every per-language translation file.
func (g *Generator) spliceTranslations(params pageParams) error {
	for _, lang := range SupportedLanguages {
		relPath := filepath.Join(TranslationsDir, lang+".ts")
		absPath := filepath.Join(g.projectPath, relPath)

		contents, err := os.ReadFile(absPath)
		if os.IsNotExist(err) {
			slog.Debug("translation file not present, skipping splice", "file", relPath)
			continue
		} else if err != nil {
			return err
		}
		updated := string(contents)

		navKey := fmt.Sprintf("nav_%s:", params.RouteId)
		if !splice.Contains(updated, navKey) {
			navEntry := fmt.Sprintf("  nav_%s: '%s',\n", params.RouteId, params.Title)
			updated, _ = splice.InsertBeforeLast(updated, translationsAnchor, navEntry)
		}

		if !splice.Contains(updated, params.RouteId+": {") {
			var buf bytes.Buffer
			if err := translationEntryTmpl.Execute(&buf, params); err != nil {
				return err
			}
			updated, _ = splice.InsertBeforeLast(updated, translationsAnchor, buf.String())
		}

		if updated != string(contents) {
			if err := os.WriteFile(absPath, []byte(updated), 0o644); err != nil {
				return err
			}
		}
	}
	return nil
}
