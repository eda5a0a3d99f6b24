// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package pagegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southwellmedia/create-velocity-astro/pkg/testutil"
)

const routesWithAbout = `export const routes = {
  about: {
    pattern: '/about',
    nav: { shown: true, order: 10, label: 'About' },
  },
} as const;
`

const emptyRoutes = `export const routes = {
} as const;
`

func TestNewPage(t *testing.T) {
	tests := []struct {
		raw     string
		want    Page
		wantErr string
	}{
		{
			raw:  "  Contact Us!! ",
			want: Page{Slug: "contact-us", RouteId: "contact_us", Title: "Contact Us"},
		},
		{
			raw:  "pricing",
			want: Page{Slug: "pricing", RouteId: "pricing", Title: "Pricing"},
		},
		{
			raw:  "our-TEAM",
			want: Page{Slug: "our-team", RouteId: "our_team", Title: "Our Team"},
		},
		{raw: "index", wantErr: "reserved"},
		{raw: "Blog", wantErr: "reserved"},
		{raw: "!!!", wantErr: "no usable characters"},
		{raw: "", wantErr: "no usable characters"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NewPage(tt.raw)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeneratePagesWritesPageFile(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{RoutesFile: emptyRoutes})

	generated, err := New(root, LayoutDefault, false).GeneratePages([]string{"pricing"})
	require.NoError(t, err)
	require.Len(t, generated, 1)

	body := testutil.ReadFile(t, root, "src/pages/pricing.astro")
	assert.Contains(t, body, "import BaseLayout from '../layouts/BaseLayout.astro';")
	assert.Contains(t, body, `title="Pricing"`)
}

func TestGeneratePagesLandingLayout(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{RoutesFile: emptyRoutes})

	_, err := New(root, LayoutLanding, false).GeneratePages([]string{"pricing"})
	require.NoError(t, err)

	body := testutil.ReadFile(t, root, "src/pages/pricing.astro")
	assert.Contains(t, body, "LandingLayout")
	assert.NotContains(t, body, "BaseLayout")
}

func TestGeneratePagesReservedNameGeneratesNothing(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{RoutesFile: emptyRoutes})

	generated, err := New(root, LayoutDefault, false).GeneratePages([]string{"index"})
	require.ErrorContains(t, err, "reserved")
	assert.Empty(t, generated)
	assert.False(t, testutil.Exists(t, root, "src/pages/index.astro"))
	assert.Equal(t, emptyRoutes, testutil.ReadFile(t, root, RoutesFile))
}

func TestRouteTableFirstEntryGetsOrderTen(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{RoutesFile: emptyRoutes})

	_, err := New(root, LayoutDefault, false).GeneratePages([]string{"pricing"})
	require.NoError(t, err)

	table := testutil.ReadFile(t, root, RoutesFile)
	assert.Contains(t, table, "order: 10")
	assert.Contains(t, table, "pricing: {")
	assert.Contains(t, table, "pattern: '/pricing'")
}

func TestRouteTableOrderMonotonic(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{RoutesFile: strings.Replace(routesWithAbout, "order: 10", "order: 40", 1)})

	_, err := New(root, LayoutDefault, false).GeneratePages([]string{"pricing"})
	require.NoError(t, err)

	table := testutil.ReadFile(t, root, RoutesFile)
	assert.Contains(t, table, "order: 50")
}

func TestRouteTableIdempotent(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{RoutesFile: routesWithAbout})
	gen := New(root, LayoutDefault, false)

	// an entry for 'about' already exists: table stays unchanged
	_, err := gen.GeneratePages([]string{"about"})
	require.NoError(t, err)
	assert.Equal(t, routesWithAbout, testutil.ReadFile(t, root, RoutesFile))

	// a fresh page is appended with the next order value
	_, err = gen.GeneratePages([]string{"pricing"})
	require.NoError(t, err)
	table := testutil.ReadFile(t, root, RoutesFile)
	assert.Equal(t, 1, strings.Count(table, "order: 20"))

	// generating it again must not duplicate the entry
	_, err = gen.GeneratePages([]string{"pricing"})
	require.NoError(t, err)
	assert.Equal(t, table, testutil.ReadFile(t, root, RoutesFile))
}

func TestRouteTableMissingAnchorSkipsSplice(t *testing.T) {
	root := t.TempDir()
	handEdited := "// custom routes, marker removed\nexport const routes = {}\n"
	testutil.WriteTree(t, root, map[string]string{RoutesFile: handEdited})

	generated, err := New(root, LayoutDefault, false).GeneratePages([]string{"pricing"})
	require.NoError(t, err)

	// the page file is still created, the table is left alone
	assert.Len(t, generated, 1)
	assert.Equal(t, handEdited, testutil.ReadFile(t, root, RoutesFile))
}

func TestRouteTableMissingFileSkipsSplice(t *testing.T) {
	root := t.TempDir()

	generated, err := New(root, LayoutDefault, false).GeneratePages([]string{"pricing"})
	require.NoError(t, err)
	assert.Len(t, generated, 1)
}

const translationFile = `export const en = {
  nav_home: 'Home',
};
`

func TestGeneratePagesMultiLanguage(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		RoutesFile:     emptyRoutes,
		I18nRoutesFile: emptyRoutes,
	}
	for _, lang := range SupportedLanguages {
		files[TranslationsDir+"/"+lang+".ts"] = translationFile
	}
	testutil.WriteTree(t, root, files)

	generated, err := New(root, LayoutDefault, true).GeneratePages([]string{"Contact Us"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"src/pages/contact-us.astro",
		"src/pages/[lang]/[...contact_us].astro",
	}, generated)

	localized := testutil.ReadFile(t, root, "src/pages/[lang]/[...contact_us].astro")
	assert.Contains(t, localized, "getStaticPaths")
	assert.Contains(t, localized, "useTranslations")
	assert.Contains(t, localized, "?? 'Contact Us'")

	i18nTable := testutil.ReadFile(t, root, I18nRoutesFile)
	assert.Contains(t, i18nTable, "contact_us: {")
	assert.Contains(t, i18nTable, "en: '/contact-us'")
	assert.Contains(t, i18nTable, "es: '/es/contact-us'")

	for _, lang := range SupportedLanguages {
		translations := testutil.ReadFile(t, root, TranslationsDir+"/"+lang+".ts")
		assert.Contains(t, translations, "nav_contact_us: 'Contact Us',", lang)
		assert.Contains(t, translations, "contact_us: {", lang)
		assert.Contains(t, translations, "title: 'Contact Us',", lang)
		// the file must still end with its original closing delimiter
		assert.True(t, strings.HasSuffix(strings.TrimSpace(translations), "};"), lang)
	}
}

func TestTranslationSpliceIdempotent(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		RoutesFile:     emptyRoutes,
		I18nRoutesFile: emptyRoutes,
	}
	for _, lang := range SupportedLanguages {
		files[TranslationsDir+"/"+lang+".ts"] = translationFile
	}
	testutil.WriteTree(t, root, files)
	gen := New(root, LayoutDefault, true)

	_, err := gen.GeneratePages([]string{"pricing"})
	require.NoError(t, err)
	first := testutil.ReadFile(t, root, TranslationsDir+"/en.ts")

	_, err = gen.GeneratePages([]string{"pricing"})
	require.NoError(t, err)
	assert.Equal(t, first, testutil.ReadFile(t, root, TranslationsDir+"/en.ts"))
}
