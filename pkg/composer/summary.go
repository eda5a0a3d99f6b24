// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package composer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Summary renders a post-compose report for the terminal.
func (r *Result) Summary() string {
	rows := [][]string{
		{"Project", r.ProjectPath},
	}
	if r.TemplateVersion != "" {
		rows = append(rows, []string{"Template version", r.TemplateVersion})
	}
	rows = append(rows,
		[]string{"Modules", fmt.Sprintf("%d (%d files)", r.Stats.Modules, r.Stats.Files)},
	)
	if len(r.Stats.Categories) > 0 {
		rows = append(rows, []string{"Categories", strings.Join(r.Stats.Categories, ", ")})
	}
	if r.Stats.ExternalPackages > 0 {
		rows = append(rows, []string{"Extra packages", fmt.Sprintf("%d", r.Stats.ExternalPackages)})
	}
	if len(r.GeneratedPages) > 0 {
		rows = append(rows, []string{"Generated pages", strings.Join(r.GeneratedPages, "\n")})
	}

	label := lipgloss.NewStyle().Bold(true)
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return label
			}
			return lipgloss.NewStyle()
		}).
		Rows(rows...).
		String()
}
