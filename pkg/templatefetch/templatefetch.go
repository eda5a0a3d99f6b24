// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

// Package templatefetch retrieves the base template tree for a locator:
// a git URL cloned shallowly, or a local directory copied as-is.
package templatefetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/southwellmedia/create-velocity-astro/pkg/overlay"
	"github.com/southwellmedia/create-velocity-astro/pkg/utils"
)

type Fetcher interface {
	// Fetch materializes the template under destPath, which must not already
	// contain files.
	Fetch(ctx context.Context, destPath string) error
}

type GitFetcher struct {
	// URL is a git remote or a local directory
	URL string
	// Ref is an optional branch or tag name; empty means the remote default
	Ref string
}

var _ Fetcher = (*GitFetcher)(nil)

func (f *GitFetcher) Fetch(ctx context.Context, destPath string) error {
	if err := ensureEmpty(destPath); err != nil {
		return err
	}

	// local directories are copied directly, no clone
	if ok, err := utils.DirExists(f.URL); err != nil {
		return err
	} else if ok {
		slog.Debug("template locator is a local directory, copying", "path", f.URL)
		return overlay.CopyTree(f.URL, destPath)
	}

	if err := f.clone(ctx, destPath); err != nil {
		return fmt.Errorf("failed to retrieve template from %q: %w", f.URL, err)
	}
	return nil
}

func (f *GitFetcher) clone(ctx context.Context, destPath string) error {
	opts := &git.CloneOptions{
		URL:   f.URL,
		Depth: 1,
	}
	if f.Ref == "" {
		_, err := git.PlainCloneContext(ctx, destPath, false, opts)
		return err
	}

	opts.SingleBranch = true
	opts.ReferenceName = plumbing.NewTagReferenceName(f.Ref)
	_, err := git.PlainCloneContext(ctx, destPath, false, opts)
	if err == nil {
		return nil
	}

	// not a tag, retry as a branch
	opts.ReferenceName = plumbing.NewBranchReferenceName(f.Ref)
	_, err = git.PlainCloneContext(ctx, destPath, false, opts)
	return err
}

func ensureEmpty(destPath string) error {
	entries, err := os.ReadDir(destPath)
	if os.IsNotExist(err) {
		return utils.EnsureDirs(destPath)
	} else if err != nil {
		return err
	}
	if len(entries) > 0 {
		return fmt.Errorf("target directory %q is not empty", destPath)
	}
	return nil
}
