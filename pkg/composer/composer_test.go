// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package composer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southwellmedia/create-velocity-astro/pkg/composer/composeopts"
	"github.com/southwellmedia/create-velocity-astro/pkg/pagegen"
	"github.com/southwellmedia/create-velocity-astro/pkg/provenance"
	"github.com/southwellmedia/create-velocity-astro/pkg/registry"
	"github.com/southwellmedia/create-velocity-astro/pkg/resolver"
	"github.com/southwellmedia/create-velocity-astro/pkg/scaffoldconfig"
	"github.com/southwellmedia/create-velocity-astro/pkg/templatefetch"
	"github.com/southwellmedia/create-velocity-astro/pkg/testutil"
)

const fixtureRoutes = `export const routes = {
  about: {
    pattern: '/about',
    nav: { shown: true, order: 10, label: 'About' },
  },
} as const;
`

const fixtureTranslations = `export const messages = {
  nav_home: 'Home',
};
`

const fixturePackageJson = `{
  "name": "velocity-astro-theme",
  "version": "2.3.1",
  "repository": "https://github.com/southwellmedia/velocity-astro-theme",
  "homepage": "https://velocity.southwellmedia.com",
  "dependencies": {"astro": "^4.0.0"}
}
`

// writeFixtureTemplate lays out a miniature template repo: base tree, demo
// content, optional modules and the two scaffold overlays.
func writeFixtureTemplate(t *testing.T) string {
	dir := t.TempDir()
	files := map[string]string{
		".git/HEAD":         "ref: refs/heads/main",
		"package-lock.json": "{}",
		"package.json":      fixturePackageJson,

		"src/pages/index.astro":          "demo index",
		"src/pages/about.astro":          "about",
		"src/components/Header.astro":    "header",
		"src/config/routes.ts":           fixtureRoutes,

		// demo content
		"src/pages/blog/index.astro":     "blog listing",
		"src/pages/projects/index.astro": "projects listing",
		"src/content/blog/hello.md":      "post",
		"src/content/projects/one.md":    "project",
		"public/images/demo/hero.jpg":    "jpg",

		// optional modules
		"src/components/modules/Faq/Faq.astro":                 "faq",
		"src/components/modules/Gallery/Gallery.astro":         "gallery",
		"src/components/modules/Gallery/Lightbox.astro":        "lightbox",
		"src/components/modules/Newsletter/Newsletter.astro":   "newsletter",
		"src/components/modules/ContactForm/ContactForm.astro": "contact form",
		"src/content/modules/team/placeholder.md":              "team",

		// utility bundle files live outside the optional dirs
		"src/components/utils/FormField.astro": "form field",

		// locale overlay
		".scaffold/overlays/i18n/src/i18n/utils.ts":        "i18n helpers",
		".scaffold/overlays/i18n/src/config/routes.i18n.ts": fixtureRoutes,
		".scaffold/overlays/i18n/src/pages/index.astro":    "localized demo index",
		".scaffold/overlays/i18n/src/pages/[lang]/blog/index.astro": "localized blog listing",

		// minimal overlay restoring placeholder pages after demo removal
		".scaffold/overlays/minimal/src/pages/index.astro": "minimal index",
	}
	for _, lang := range pagegen.SupportedLanguages {
		files[".scaffold/overlays/i18n/src/i18n/translations/"+lang+".ts"] = fixtureTranslations
	}
	testutil.WriteTree(t, dir, files)
	return dir
}

func fixtureRegistry() *registry.Registry {
	return &registry.Registry{
		Categories: map[string]*registry.Category{
			"marketing": {Name: "Marketing"},
			"content":   {Name: "Content"},
		},
		Utils: map[string]*registry.UtilityBundle{
			"forms": {
				Files:            []string{"src/components/utils/FormField.astro"},
				ExternalPackages: []string{"@tailwindcss/forms@^0.5"},
			},
		},
		Modules: map[string]*registry.Module{
			"faq": {
				Category: "marketing",
				Files:    []string{"src/components/modules/Faq/Faq.astro"},
			},
			"gallery": {
				Category: "content",
				Files: []string{
					"src/components/modules/Gallery/Gallery.astro",
					"src/components/modules/Gallery/Lightbox.astro",
				},
			},
			"newsletter": {
				Category:     "marketing",
				Files:        []string{"src/components/modules/Newsletter/Newsletter.astro"},
				Dependencies: registry.Dependencies{Utils: []string{"forms"}},
			},
			"contact-form": {
				Category: "marketing",
				Files:    []string{"src/components/modules/ContactForm/ContactForm.astro"},
				Dependencies: registry.Dependencies{
					Utils:   []string{"forms"},
					Modules: []string{"newsletter"},
				},
			},
			"team-grid": {
				Category: "content",
				Files:    []string{"src/content/modules/team/placeholder.md"},
			},
		},
	}
}

type fakeInstaller struct {
	calls int
}

func (f *fakeInstaller) Install(_ context.Context, _ string) error {
	f.calls++
	return nil
}

type harness struct {
	composer  *Composer
	installer *fakeInstaller
	target    string
}

func newHarness(t *testing.T) *harness {
	templateDir := writeFixtureTemplate(t)
	config := &scaffoldconfig.Config{
		TemplateURL:     templateDir,
		ComposeLockPath: filepath.Join(t.TempDir(), "compose.lock"),
	}
	installer := &fakeInstaller{}
	c := New(config, fixtureRegistry(), &templatefetch.GitFetcher{URL: templateDir}, installer, testutil.SilentPrinter{})
	return &harness{
		composer:  c,
		installer: installer,
		target:    filepath.Join(t.TempDir(), "my-site"),
	}
}

func defaultOpts(h *harness) *composeopts.Options {
	return &composeopts.Options{
		ProjectName: "my-site",
		TargetPath:  h.target,
		Demo:        true,
		Selection:   resolver.Selection{Mode: resolver.SelectAll},
		Layout:      pagegen.LayoutDefault,
		SkipGit:     true,
	}
}

func TestStageOrderIsFixed(t *testing.T) {
	h := newHarness(t)
	run := &composition{opts: defaultOpts(h), resolved: resolver.Resolve(resolver.Selection{Mode: resolver.SelectNone}, fixtureRegistry())}

	names := lo.Map(h.composer.stages(run), func(s stage, _ int) string { return s.name })
	assert.Equal(t, []string{
		"retrieving template",
		"applying module selection",
		"applying locale overlay",
		"removing demo content",
		"cleaning scaffold sources",
		"generating pages",
		"rewriting project metadata",
		"recording provenance",
		"initializing git repository",
		"installing dependencies",
	}, names)

	// the locale overlay must land before demo removal decides what to prune
	idx := func(name string) int {
		_, i, ok := lo.FindIndexOf(names, func(n string) bool { return n == name })
		require.True(t, ok)
		return i
	}
	assert.Less(t, idx("applying locale overlay"), idx("removing demo content"))
}

func TestComposeFullDemo(t *testing.T) {
	h := newHarness(t)
	opts := defaultOpts(h)

	result, err := h.composer.Compose(testutil.Context(t), opts)
	require.NoError(t, err)

	// retrieval artifacts stripped
	assert.False(t, testutil.Exists(t, h.target, ".git"))
	assert.False(t, testutil.Exists(t, h.target, "package-lock.json"))
	// overlay sources never leak into the project
	assert.False(t, testutil.Exists(t, h.target, ".scaffold"))

	// demo content kept as-is
	assert.True(t, testutil.Exists(t, h.target, "src/pages/blog/index.astro"))
	assert.Equal(t, "demo index", testutil.ReadFile(t, h.target, "src/pages/index.astro"))

	// metadata detached
	pkgJson := testutil.ReadFile(t, h.target, "package.json")
	assert.Contains(t, pkgJson, `"my-site"`)
	assert.NotContains(t, pkgJson, "repository")

	assert.Equal(t, "2.3.1", result.TemplateVersion)
	assert.Equal(t, 1, h.installer.calls)

	record, err := provenance.Read(h.target)
	require.NoError(t, err)
	assert.Equal(t, "my-site", record.ProjectName)
	assert.Equal(t, "2.3.1", record.TemplateVersion)
}

func TestComposeDemoWithI18n(t *testing.T) {
	h := newHarness(t)
	opts := defaultOpts(h)
	opts.MultiLanguage = true

	_, err := h.composer.Compose(testutil.Context(t), opts)
	require.NoError(t, err)

	// localized demo pages exist: overlay ran and demo removal did not
	assert.True(t, testutil.Exists(t, h.target, "src/pages/[lang]/blog/index.astro"))
	assert.Equal(t, "localized demo index", testutil.ReadFile(t, h.target, "src/pages/index.astro"))
	assert.True(t, testutil.Exists(t, h.target, "src/config/routes.i18n.ts"))
}

func TestComposeNoDemoWithI18n(t *testing.T) {
	h := newHarness(t)
	opts := defaultOpts(h)
	opts.Demo = false
	opts.MultiLanguage = true

	_, err := h.composer.Compose(testutil.Context(t), opts)
	require.NoError(t, err)

	// no demo pages, localized or not
	assert.False(t, testutil.Exists(t, h.target, "src/pages/blog"))
	assert.False(t, testutil.Exists(t, h.target, "src/pages/[lang]/blog"))
	assert.False(t, testutil.Exists(t, h.target, "src/content/blog/hello.md"))
	assert.False(t, testutil.Exists(t, h.target, "public/images/demo"))

	// the localized routing scaffold is in place
	assert.True(t, testutil.Exists(t, h.target, "src/i18n/utils.ts"))
	assert.True(t, testutil.Exists(t, h.target, "src/config/routes.i18n.ts"))

	// minimal overlay restored the placeholder index
	assert.Equal(t, "minimal index", testutil.ReadFile(t, h.target, "src/pages/index.astro"))

	// expected-empty content dirs survive with a marker
	assert.True(t, testutil.Exists(t, h.target, "src/content/blog/.gitkeep"))
	assert.True(t, testutil.Exists(t, h.target, "src/content/projects/.gitkeep"))
}

func TestComposeSelectionNone(t *testing.T) {
	h := newHarness(t)
	opts := defaultOpts(h)
	opts.Selection = resolver.Selection{Mode: resolver.SelectNone}

	_, err := h.composer.Compose(testutil.Context(t), opts)
	require.NoError(t, err)

	assert.False(t, testutil.Exists(t, h.target, "src/components/modules"))
	assert.False(t, testutil.Exists(t, h.target, "src/content/modules"))
	// non-optional trees are untouched
	assert.True(t, testutil.Exists(t, h.target, "src/components/Header.astro"))
}

func TestComposeSelectionIndividual(t *testing.T) {
	h := newHarness(t)
	opts := defaultOpts(h)
	opts.Selection = resolver.Selection{Mode: resolver.SelectIndividual, Modules: []string{"contact-form"}}

	result, err := h.composer.Compose(testutil.Context(t), opts)
	require.NoError(t, err)

	// contact-form plus its transitive newsletter dependency survive
	assert.True(t, testutil.Exists(t, h.target, "src/components/modules/ContactForm/ContactForm.astro"))
	assert.True(t, testutil.Exists(t, h.target, "src/components/modules/Newsletter/Newsletter.astro"))
	// everything else under the optional dirs is filtered out, dirs pruned
	assert.False(t, testutil.Exists(t, h.target, "src/components/modules/Faq"))
	assert.False(t, testutil.Exists(t, h.target, "src/components/modules/Gallery"))
	assert.False(t, testutil.Exists(t, h.target, "src/content/modules"))

	// bundle files outside the optional dirs are untouched by filtering
	assert.True(t, testutil.Exists(t, h.target, "src/components/utils/FormField.astro"))

	// the bundle's external packages land in package.json
	pkgJson := testutil.ReadFile(t, h.target, "package.json")
	assert.Contains(t, pkgJson, `"@tailwindcss/forms": "^0.5"`)

	assert.Equal(t, 2, result.Stats.Modules)
}

func TestComposeGeneratesPages(t *testing.T) {
	h := newHarness(t)
	opts := defaultOpts(h)
	opts.Pages = []string{"Pricing"}

	result, err := h.composer.Compose(testutil.Context(t), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/pages/pricing.astro"}, result.GeneratedPages)
	table := testutil.ReadFile(t, h.target, "src/config/routes.ts")
	assert.Contains(t, table, "pricing: {")
	assert.Contains(t, table, "order: 20")
}

func TestComposeSkipInstall(t *testing.T) {
	h := newHarness(t)
	opts := defaultOpts(h)
	opts.SkipInstall = true

	_, err := h.composer.Compose(testutil.Context(t), opts)
	require.NoError(t, err)
	assert.Equal(t, 0, h.installer.calls)
}

func TestComposeInitsRepository(t *testing.T) {
	h := newHarness(t)
	opts := defaultOpts(h)
	opts.SkipGit = false

	_, err := h.composer.Compose(testutil.Context(t), opts)
	require.NoError(t, err)
	assert.True(t, testutil.Exists(t, h.target, ".git/HEAD"))
}

func TestComposeRejectsBadProjectName(t *testing.T) {
	h := newHarness(t)
	opts := defaultOpts(h)
	opts.ProjectName = "My Site!"

	_, err := h.composer.Compose(testutil.Context(t), opts)
	require.ErrorContains(t, err, "invalid project name")
}

func TestComposeReservedPageAborts(t *testing.T) {
	h := newHarness(t)
	opts := defaultOpts(h)
	opts.Pages = []string{"index"}

	_, err := h.composer.Compose(testutil.Context(t), opts)
	require.ErrorContains(t, err, "reserved")
}
