// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffoldconfig

const (
	ConfigFileName  = "cva-config.yaml"
	ComposeLockName = "compose.lock"

	// DefaultTemplateURL is the canonical Velocity theme repository
	DefaultTemplateURL = "https://github.com/southwellmedia/velocity-astro-theme"

	UserAgentPrefix = "create-velocity-astro"
)
