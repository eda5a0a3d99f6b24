// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTree materializes relative-path -> contents under root.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, contents := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), os.ModePerm))
		require.NoError(t, os.WriteFile(p, []byte(contents), 0o644))
	}
}

// ReadFile reads a project-relative file and fails the test if it is missing.
func ReadFile(t *testing.T, root, rel string) string {
	t.Helper()
	contents, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(contents)
}

// Exists reports whether a project-relative path exists.
func Exists(t *testing.T, root, rel string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	if os.IsNotExist(err) {
		return false
	}
	require.NoError(t, err)
	return true
}

func Context(t *testing.T) context.Context {
	ctx, stopFn := context.WithCancel(context.Background())
	t.Cleanup(stopFn)
	return ctx
}

// SilentPrinter discards all output.
type SilentPrinter struct{}

func (SilentPrinter) Print(i ...interface{})                   {}
func (SilentPrinter) Println(i ...interface{})                 {}
func (SilentPrinter) Printf(format string, i ...interface{})   {}
func (SilentPrinter) PrintErr(i ...interface{})                {}
func (SilentPrinter) PrintErrln(i ...interface{})              {}
func (SilentPrinter) PrintErrf(format string, i ...interface{}) {}
