// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

// Package provenance records which template version and options a project was
// composed from, for a future upgrade workflow that diffs a project against a
// newer template.
package provenance

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/southwellmedia/create-velocity-astro/pkg/utils"
)

const (
	Dir      = ".velocity"
	FileName = "provenance.json"
)

// Now is swappable for deterministic tests.
var Now = time.Now

type Record struct {
	TemplateURL     string    `json:"templateUrl"`
	TemplateRef     string    `json:"templateRef,omitempty"`
	TemplateVersion string    `json:"templateVersion,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`

	ProjectName    string   `json:"projectName"`
	Demo           bool     `json:"demo"`
	MultiLanguage  bool     `json:"multiLanguage"`
	Selection      string   `json:"selection"`
	Modules        []string `json:"modules,omitempty"`
	Pages          []string `json:"pages,omitempty"`
	Layout         string   `json:"layout"`
	PackageManager string   `json:"packageManager,omitempty"`
}

func Write(projectPath string, record *Record) error {
	if err := utils.EnsureDirs(filepath.Join(projectPath, Dir)); err != nil {
		return err
	}
	contents, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(projectPath, Dir, FileName), append(contents, '\n'), 0o644)
}

func Read(projectPath string) (*Record, error) {
	contents, err := os.ReadFile(filepath.Join(projectPath, Dir, FileName))
	if err != nil {
		return nil, err
	}
	var record Record
	if err := json.Unmarshal(contents, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
