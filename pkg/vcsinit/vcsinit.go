// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package vcsinit

import (
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Init creates a fresh repository in projectPath with a single commit
// containing the composed tree. The project is usable without version
// control, so callers treat failure as a warning, not an abort.
func Init(projectPath string) error {
	repo, err := git.PlainInit(projectPath, false)
	if err != nil {
		return fmt.Errorf("failed to init repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return err
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}

	_, err = wt.Commit("Initial commit from create-velocity-astro", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "create-velocity-astro",
			Email: "noreply@southwellmedia.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create initial commit: %w", err)
	}
	return nil
}
