// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package pagegen

// DefaultLanguage keeps the un-prefixed route; every other supported language
// is served under a /<lang>/ prefix.
const DefaultLanguage = "en"

// SupportedLanguages matches the locale overlay shipped with the theme.
var SupportedLanguages = []string{"en", "es", "fr", "de"}
