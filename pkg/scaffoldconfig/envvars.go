// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffoldconfig

const envVarPrefix = "CVA_"

const (
	// LogLevelEnvVar
	// CVA_LOG_LEVEL sets the log level for the scaffolder.
	// 	Default: info
	//  Possible values: info error warning fatal debug
	LogLevelEnvVar = envVarPrefix + "LOG_LEVEL"

	// RegistryURLEnvVar
	// CVA_REGISTRY_URL overrides the URL from which the module registry document is fetched.
	// When unset and no config file value is present, the registry bundled with the binary is used.
	RegistryURLEnvVar = envVarPrefix + "REGISTRY_URL"

	// NetrcPathEnvVar
	// CVA_NETRC overrides the netrc file consulted for registry credentials.
	// 	Default: $HOME/.netrc
	NetrcPathEnvVar = envVarPrefix + "NETRC"

	// TemplateURLEnvVar
	// CVA_TEMPLATE overrides the template locator (git URL or local directory)
	TemplateURLEnvVar = envVarPrefix + "TEMPLATE"

	// LicenseKeyEnvVar
	// CVA_LICENSE_KEY supplies the license key that unlocks premium modules
	LicenseKeyEnvVar = envVarPrefix + "LICENSE_KEY"

	// SkipInstallEnvVar
	// CVA_SKIP_INSTALL skips installing dependencies after composition,
	// as if --skip-install was passed.
	// 	Default: false
	SkipInstallEnvVar = envVarPrefix + "SKIP_INSTALL"

	// ConfigHomeEnvVar
	// CVA_HOME is the absolute path to the scaffolder's home directory
	// (config file, compose locks).
	// 	Default: $HOME/.create-velocity-astro
	ConfigHomeEnvVar = envVarPrefix + "HOME"
)
