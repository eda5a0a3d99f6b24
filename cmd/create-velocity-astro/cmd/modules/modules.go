// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package modules

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/southwellmedia/create-velocity-astro/pkg/registry"
	"github.com/southwellmedia/create-velocity-astro/pkg/resolver"
)

func Cmd(store *registry.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "list the optional modules available in the registry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := store.Get(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Println(render(reg))
			return nil
		},
	}
}

func render(reg *registry.Registry) string {
	categoryIds := lo.Keys(reg.Categories)
	sort.Strings(categoryIds)

	premiumStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Italic(true)

	var rows [][]string
	for _, catId := range categoryIds {
		moduleIds := resolver.ModulesInCategory(reg, catId)
		sort.Strings(moduleIds)

		for _, id := range moduleIds {
			m := reg.Modules[id]
			marker := ""
			if m.Premium {
				marker = premiumStyle.Render("premium")
			}
			rows = append(rows, []string{
				id,
				m.Name,
				reg.Categories[catId].Name,
				fmt.Sprintf("%d files", len(m.Files)),
				marker,
			})
		}
	}

	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		Rows(rows...).
		String()
}
