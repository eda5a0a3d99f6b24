// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package pkginstall

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/samber/lo"
)

type PackageManager string

const (
	Npm  PackageManager = "npm"
	Pnpm PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
	Bun  PackageManager = "bun"
)

var knownManagers = []PackageManager{Npm, Pnpm, Yarn, Bun}

func ParsePackageManager(raw string) (PackageManager, error) {
	if raw == "" {
		return Npm, nil
	}
	pm := PackageManager(raw)
	if !lo.Contains(knownManagers, pm) {
		return "", fmt.Errorf("unknown package manager %q. must be one of %v", raw, knownManagers)
	}
	return pm, nil
}

type Installer interface {
	Install(ctx context.Context, projectPath string) error
}

// ExecInstaller shells out to the chosen package manager.
type ExecInstaller struct {
	Manager PackageManager
}

var _ Installer = (*ExecInstaller)(nil)

func (e *ExecInstaller) Install(ctx context.Context, projectPath string) error {
	cmd := exec.CommandContext(ctx, string(e.Manager), "install")
	cmd.Dir = projectPath
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("'%s install' failed: %w", e.Manager, err)
	}
	return nil
}
