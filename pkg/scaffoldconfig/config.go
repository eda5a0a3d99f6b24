// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package scaffoldconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/southwellmedia/create-velocity-astro/pkg/utils"
)

type Config struct {
	HomePath string `yaml:"-"`

	// absolute path of the lockfile guarding concurrent composes
	ComposeLockPath string `yaml:"-"`

	// RegistryURL is empty when the embedded registry should be used
	RegistryURL string `yaml:"registry-url,omitempty"`
	NetrcPath   string `yaml:"netrc-path,omitempty"`

	TemplateURL string `yaml:"template-url,omitempty"`
	TemplateRef string `yaml:"template-ref,omitempty"`

	LicenseKey string `yaml:"license-key,omitempty"`

	PackageManager string `yaml:"package-manager,omitempty"`
}

func Get() (*Config, error) {
	homePath, err := getHomePath()
	if err != nil {
		return nil, err
	}
	return GetWithCustomHome(homePath)
}

func GetWithCustomHome(homePath string) (*Config, error) {
	config := Config{}

	// cva-config.yaml is optional
	configFilePath := filepath.Join(homePath, ConfigFileName)
	fileInfo, err := os.Stat(configFilePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else {
		if fileInfo.IsDir() {
			return nil, fmt.Errorf("%q is directory and not a file", configFilePath)
		}

		bytes, err := os.ReadFile(configFilePath)
		if err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(bytes, &config); err != nil {
			return nil, err
		}
	}

	if registryURL, ok := os.LookupEnv(RegistryURLEnvVar); ok {
		config.RegistryURL = registryURL
	}
	if netrcPath, ok := os.LookupEnv(NetrcPathEnvVar); ok {
		config.NetrcPath = netrcPath
	}
	if templateURL, ok := os.LookupEnv(TemplateURLEnvVar); ok {
		config.TemplateURL = templateURL
	}
	if licenseKey, ok := os.LookupEnv(LicenseKeyEnvVar); ok {
		config.LicenseKey = licenseKey
	}

	if config.TemplateURL == "" {
		config.TemplateURL = DefaultTemplateURL
	}

	config.HomePath = homePath
	config.ComposeLockPath = filepath.Join(homePath, ComposeLockName)

	return &config, nil
}

func (c *Config) EnsureDirs() error {
	return utils.EnsureDirs(c.HomePath)
}

func getHomePath() (string, error) {
	if home, ok := os.LookupEnv(ConfigHomeEnvVar); ok {
		return home, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine the user home directory: %w", err)
	}
	return filepath.Join(userHome, ".create-velocity-astro"), nil
}
