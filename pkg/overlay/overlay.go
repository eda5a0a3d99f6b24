// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

// Package overlay holds the filesystem operations the composition pipeline is
// built from: overlay copies with overwrite semantics, best-effort removal,
// and allow-list filtering of optional module trees.
package overlay

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/southwellmedia/create-velocity-astro/pkg/utils"
	"github.com/southwellmedia/create-velocity-astro/pkg/utils/stringset"
)

// KeepFileName is written into otherwise-empty content directories so they
// survive storage systems that don't track empty directories.
const KeepFileName = ".gitkeep"

// CopyTree copies every file under src onto dst, replacing any same-path file
// already present. Missing src is a no-op: overlays are optional by design.
func CopyTree(src, dst string) error {
	exists, err := utils.DirExists(src)
	if err != nil {
		return err
	}
	if !exists {
		slog.Debug("overlay source not present, skipping", "src", src)
		return nil
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		return utils.CopyFile(path, filepath.Join(dst, rel))
	})
}

// RemovePaths deletes the given paths (files or whole directories) relative
// to root. Deletions are best-effort: an item that cannot be removed is left
// in place with a warning rather than aborting the pipeline, and absent paths
// are expected.
func RemovePaths(root string, relPaths ...string) {
	for _, rel := range relPaths {
		p := filepath.Join(root, rel)
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if err := os.RemoveAll(p); err != nil {
			slog.Warn("could not remove path, leaving it in place", "path", p, "err", err.Error())
		}
	}
}

// FilterTree deletes every file under dir (relative to root) whose
// root-relative path is not in keep, then prunes directories left empty.
// Only the explicitly named directory is subject to filtering.
func FilterTree(root, dir string, keep stringset.StringSet) error {
	absDir := filepath.Join(root, dir)
	exists, err := utils.DirExists(absDir)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	err = filepath.WalkDir(absDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if keep.Contains(filepath.ToSlash(rel)) {
			return nil
		}
		if err := os.Remove(path); err != nil {
			slog.Warn("could not remove filtered file", "path", path, "err", err.Error())
		}
		return nil
	})
	if err != nil {
		return err
	}

	return PruneEmptyDirs(absDir)
}

// PruneEmptyDirs removes directories under dir that contain no files,
// processed bottom-up so deleting a child can make its parent empty in the
// same pass. dir itself is pruned too when it ends up empty.
func PruneEmptyDirs(dir string) error {
	var dirs []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	// deepest first
	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })

	for _, d := range dirs {
		entries, err := os.ReadDir(d)
		if err != nil {
			continue
		}
		if len(entries) == 0 {
			if err := os.Remove(d); err != nil {
				slog.Warn("could not prune empty directory", "path", d, "err", err.Error())
			}
		}
	}
	return nil
}

// EnsureKeepDirs creates the given directories (relative to root) with a
// marker file inside each.
func EnsureKeepDirs(root string, relDirs ...string) error {
	for _, rel := range relDirs {
		d := filepath.Join(root, rel)
		if err := utils.EnsureDirs(d); err != nil {
			return err
		}
		keep := filepath.Join(d, KeepFileName)
		if ok, err := utils.FileExists(keep); err != nil {
			return err
		} else if !ok {
			if err := os.WriteFile(keep, nil, 0o644); err != nil {
				return err
			}
		}
	}
	return nil
}
