// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

// Package composer assembles a ready-to-run project from the base template,
// the selected optional modules and the requested overlays. The pipeline is
// an ordered list of named stages driven by a single loop; the order is a
// correctness constraint, not an implementation detail (the locale overlay
// must land before demo removal decides what to prune).
package composer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/southwellmedia/create-velocity-astro/pkg/composer/composeopts"
	"github.com/southwellmedia/create-velocity-astro/pkg/overlay"
	"github.com/southwellmedia/create-velocity-astro/pkg/pagegen"
	"github.com/southwellmedia/create-velocity-astro/pkg/pkginstall"
	"github.com/southwellmedia/create-velocity-astro/pkg/projectmeta"
	"github.com/southwellmedia/create-velocity-astro/pkg/provenance"
	"github.com/southwellmedia/create-velocity-astro/pkg/registry"
	"github.com/southwellmedia/create-velocity-astro/pkg/resolver"
	"github.com/southwellmedia/create-velocity-astro/pkg/scaffoldconfig"
	"github.com/southwellmedia/create-velocity-astro/pkg/templatefetch"
	"github.com/southwellmedia/create-velocity-astro/pkg/utils"
	"github.com/southwellmedia/create-velocity-astro/pkg/vcsinit"
)

type Composer struct {
	config    *scaffoldconfig.Config
	registry  *registry.Registry
	fetcher   templatefetch.Fetcher
	installer pkginstall.Installer
	printer   utils.RawPrinter
}

// Result summarizes a successful composition for user-facing output.
type Result struct {
	ProjectPath     string
	TemplateVersion string
	GeneratedPages  []string
	Stats           resolver.Stats
}

func New(config *scaffoldconfig.Config, reg *registry.Registry, fetcher templatefetch.Fetcher, installer pkginstall.Installer, printer utils.RawPrinter) *Composer {
	return &Composer{
		config:    config,
		registry:  reg,
		fetcher:   fetcher,
		installer: installer,
		printer:   printer,
	}
}

type stage struct {
	name string
	// non-fatal stages log their failure and let composition continue
	fatal bool
	run   func(ctx context.Context) error
}

// composition carries the per-run state threaded through the stages. The
// working tree itself stays on disk; each stage re-reads the filesystem as
// ground truth.
type composition struct {
	opts     *composeopts.Options
	resolved *resolver.ResolvedSet

	// template version captured before metadata rewriting resets it
	templateVersion string
	generatedPages  []string
}

// Compose runs the full pipeline. The working tree is not rolled back on
// failure; a partially composed project is left for inspection.
func (c *Composer) Compose(ctx context.Context, opts *composeopts.Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	run := &composition{
		opts:     opts,
		resolved: resolver.Resolve(opts.Selection, c.registry),
	}

	err := utils.WithComposeLock(ctx, c.config.ComposeLockPath, func() error {
		return c.runStages(ctx, run)
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		ProjectPath:     opts.TargetPath,
		TemplateVersion: run.templateVersion,
		GeneratedPages:  run.generatedPages,
		Stats:           resolver.SelectionStats(run.resolved, c.registry),
	}, nil
}

func (c *Composer) runStages(ctx context.Context, run *composition) error {
	stages := c.stages(run)
	for i, s := range stages {
		c.printer.Printf("[%d/%d] %s...\n", i+1, len(stages), s.name)
		if err := s.run(ctx); err != nil {
			if s.fatal {
				return fmt.Errorf("%s failed: %w", s.name, err)
			}
			slog.Warn("stage failed, continuing", "stage", s.name, "err", err.Error())
		}
	}
	return nil
}

// stages returns the pipeline in its one valid order.
func (c *Composer) stages(run *composition) []stage {
	return []stage{
		{name: "retrieving template", fatal: true, run: run.bind(c.fetchTemplate)},
		{name: "applying module selection", run: run.bind(c.applySelection)},
		{name: "applying locale overlay", run: run.bind(c.applyLocaleOverlay)},
		{name: "removing demo content", run: run.bind(c.removeDemoContent)},
		{name: "cleaning scaffold sources", run: run.bind(c.stripScaffoldSources)},
		{name: "generating pages", fatal: true, run: run.bind(c.generatePages)},
		{name: "rewriting project metadata", fatal: true, run: run.bind(c.rewriteMetadata)},
		{name: "recording provenance", run: run.bind(c.writeProvenance)},
		{name: "initializing git repository", run: run.bind(c.initRepository)},
		{name: "installing dependencies", fatal: true, run: run.bind(c.installDependencies)},
	}
}

type stageFn func(ctx context.Context, run *composition) error

func (run *composition) bind(fn stageFn) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return fn(ctx, run)
	}
}

func (c *Composer) fetchTemplate(ctx context.Context, run *composition) error {
	if err := c.fetcher.Fetch(ctx, run.opts.TargetPath); err != nil {
		return err
	}
	overlay.RemovePaths(run.opts.TargetPath, retrievalArtifacts...)
	return nil
}

func (c *Composer) applySelection(_ context.Context, run *composition) error {
	switch run.opts.Selection.Mode {
	case resolver.SelectAll:
		// the template ships every module, nothing to filter
		return nil
	case resolver.SelectNone:
		overlay.RemovePaths(run.opts.TargetPath, OptionalModuleDirs...)
		return nil
	}

	for _, dir := range OptionalModuleDirs {
		if err := overlay.FilterTree(run.opts.TargetPath, dir, run.resolved.Files); err != nil {
			return err
		}
	}
	return nil
}

func (c *Composer) applyLocaleOverlay(_ context.Context, run *composition) error {
	if !run.opts.MultiLanguage {
		return nil
	}
	return overlay.CopyTree(
		filepath.Join(run.opts.TargetPath, I18nOverlayDir),
		run.opts.TargetPath,
	)
}

func (c *Composer) removeDemoContent(_ context.Context, run *composition) error {
	if run.opts.Demo {
		return nil
	}
	overlay.RemovePaths(run.opts.TargetPath, demoContentPaths...)
	if err := overlay.CopyTree(filepath.Join(run.opts.TargetPath, MinimalOverlayDir), run.opts.TargetPath); err != nil {
		return err
	}
	return overlay.EnsureKeepDirs(run.opts.TargetPath, contentDirs...)
}

func (c *Composer) stripScaffoldSources(_ context.Context, run *composition) error {
	overlay.RemovePaths(run.opts.TargetPath, ScaffoldDir)
	return nil
}

func (c *Composer) generatePages(_ context.Context, run *composition) error {
	if len(run.opts.Pages) == 0 {
		return nil
	}
	gen := pagegen.New(run.opts.TargetPath, run.opts.Layout, run.opts.MultiLanguage)
	generated, err := gen.GeneratePages(run.opts.Pages)
	run.generatedPages = generated
	return err
}

func (c *Composer) rewriteMetadata(_ context.Context, run *composition) error {
	pkg, err := projectmeta.Read(run.opts.TargetPath)
	if err != nil {
		return err
	}

	if v, err := pkg.Version(); err == nil {
		run.templateVersion = v.String()
	} else {
		slog.Debug("template version not recorded", "err", err.Error())
	}

	pkg.Detach(run.opts.ProjectName)
	pkg.EnsureDependencies(run.resolved.ExternalPackages.Sorted())
	return pkg.Write()
}

func (c *Composer) writeProvenance(_ context.Context, run *composition) error {
	record := &provenance.Record{
		TemplateURL:     c.config.TemplateURL,
		TemplateRef:     c.config.TemplateRef,
		TemplateVersion: run.templateVersion,
		CreatedAt:       provenance.Now(),
		ProjectName:     run.opts.ProjectName,
		Demo:            run.opts.Demo,
		MultiLanguage:   run.opts.MultiLanguage,
		Selection:       string(run.opts.Selection.Mode),
		Modules:         run.resolved.Modules.Sorted(),
		Pages:           run.opts.Pages,
		Layout:          string(run.opts.Layout),
		PackageManager:  string(run.opts.PackageManager),
	}
	return provenance.Write(run.opts.TargetPath, record)
}

func (c *Composer) initRepository(_ context.Context, run *composition) error {
	if run.opts.SkipGit {
		return nil
	}
	return vcsinit.Init(run.opts.TargetPath)
}

func (c *Composer) installDependencies(ctx context.Context, run *composition) error {
	if run.opts.SkipInstall {
		return nil
	}
	return c.installer.Install(ctx, run.opts.TargetPath)
}
