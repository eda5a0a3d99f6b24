// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package embedded

import _ "embed"

// RegistryYaml is the module registry bundled with the binary, used when no
// remote registry URL is configured.
//
//go:embed registry.yaml
var RegistryYaml []byte
