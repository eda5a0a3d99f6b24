// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package pagegen

import "text/template"

type pageParams struct {
	Page
	LayoutComponent string
	Order           int
	Languages       []string
	DefaultLanguage string
}

var pageBodyTmpl = template.Must(template.New("page").Parse(`---
import {{ .LayoutComponent }} from '../layouts/{{ .LayoutComponent }}.astro';
---

<{{ .LayoutComponent }} title="{{ .Title }}" description="{{ .Title }}">
  <section class="container">
    <h1>{{ .Title }}</h1>
    <p>Replace this with your {{ .Title }} content.</p>
  </section>
</{{ .LayoutComponent }}>
`))

var localizedPageBodyTmpl = template.Must(template.New("localizedPage").Parse(`---
import {{ .LayoutComponent }} from '../../layouts/{{ .LayoutComponent }}.astro';
import { languages, defaultLang, useTranslations } from '../../i18n/utils';

export function getStaticPaths() {
  return Object.keys(languages)
    .filter((lang) => lang !== defaultLang)
    .map((lang) => ({ params: { lang, {{ .RouteId }}: '{{ .Slug }}' } }));
}

const { lang } = Astro.params;
const t = useTranslations(lang);

const title = t('{{ .RouteId }}.title') ?? '{{ .Title }}';
const description = t('{{ .RouteId }}.description') ?? '{{ .Title }}';
---

<{{ .LayoutComponent }} title={title} description={description}>
  <section class="container">
    <h1>{title}</h1>
    <p>{description}</p>
  </section>
</{{ .LayoutComponent }}>
`))

var routeEntryTmpl = template.Must(template.New("routeEntry").Parse(`  {{ .RouteId }}: {
    pattern: '/{{ .Slug }}',
    nav: { shown: true, order: {{ .Order }}, label: '{{ .Title }}' },
  },
`))

var localizedRouteEntryTmpl = template.Must(template.New("localizedRouteEntry").Parse(`  {{ .RouteId }}: {
    pattern: '/{{ .Slug }}',
    paths: {
{{- $p := . }}
{{- range .Languages }}
{{- if eq . $p.DefaultLanguage }}
      {{ . }}: '/{{ $p.Slug }}',
{{- else }}
      {{ . }}: '/{{ . }}/{{ $p.Slug }}',
{{- end }}
{{- end }}
    },
    nav: { shown: true, order: {{ .Order }}, label: '{{ .Title }}' },
  },
`))

var translationEntryTmpl = template.Must(template.New("translationEntry").Parse(`  {{ .RouteId }}: {
    title: '{{ .Title }}',
    description: 'Tell visitors about {{ .Title }}.',
  },
`))
