// Copyright (c) 2024-2026 Southwell Media. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/southwellmedia/create-velocity-astro/cmd/create-velocity-astro/cmd/modules"
	"github.com/southwellmedia/create-velocity-astro/pkg/composer"
	"github.com/southwellmedia/create-velocity-astro/pkg/composer/composeopts"
	"github.com/southwellmedia/create-velocity-astro/pkg/logging"
	"github.com/southwellmedia/create-velocity-astro/pkg/pagegen"
	"github.com/southwellmedia/create-velocity-astro/pkg/pkginstall"
	"github.com/southwellmedia/create-velocity-astro/pkg/registry"
	"github.com/southwellmedia/create-velocity-astro/pkg/resolver"
	"github.com/southwellmedia/create-velocity-astro/pkg/scaffoldconfig"
	"github.com/southwellmedia/create-velocity-astro/pkg/templatefetch"
	"github.com/southwellmedia/create-velocity-astro/pkg/utils"
)

type rootFlags struct {
	path           string
	noDemo         bool
	i18n           bool
	modules        string
	pages          []string
	layout         string
	packageManager string
	template       string
	ref            string
	licenseKey     string
	skipInstall    bool
	skipGit        bool
}

func RootCmd() (*cobra.Command, error) {
	if err := logging.InitLogging(); err != nil {
		return nil, err
	}

	config, err := scaffoldconfig.Get()
	if err != nil {
		return nil, err
	}
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}

	store := registry.NewStore(config)

	skipInstallDefault, _, err := utils.BoolEnvVar(scaffoldconfig.SkipInstallEnvVar)
	if err != nil {
		return nil, err
	}

	var flags rootFlags
	cmd := &cobra.Command{
		Use:   "create-velocity-astro <project-name>",
		Short: "Scaffold a new Velocity Astro project",
		Long: "Scaffold a new project from the Velocity Astro theme: pick optional modules,\n" +
			"multi-language routing, demo content and pre-generated pages.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args[0], &flags, config, store)
		},
	}

	cmd.Flags().StringVar(&flags.path, "path", "", "target directory (default: ./<project-name>)")
	cmd.Flags().BoolVar(&flags.noDemo, "no-demo", false, "strip the demo content and start from placeholder pages")
	cmd.Flags().BoolVar(&flags.i18n, "i18n", false, "include multi-language routing")
	cmd.Flags().StringVar(&flags.modules, "modules", "all", "module selection: 'all', 'none', 'cat:<id>,...' or a comma-separated module id list")
	cmd.Flags().StringSliceVar(&flags.pages, "pages", nil, "extra pages to generate, by name")
	cmd.Flags().StringVar(&flags.layout, "layout", "default", "layout for generated pages ('default' or 'landing')")
	cmd.Flags().StringVar(&flags.packageManager, "package-manager", "npm", "package manager used to install dependencies")
	cmd.Flags().StringVar(&flags.template, "template", "", "template locator (git URL or local directory)")
	cmd.Flags().StringVar(&flags.ref, "ref", "", "template branch or tag")
	cmd.Flags().StringVar(&flags.licenseKey, "license-key", "", "license key unlocking premium modules")
	cmd.Flags().BoolVar(&flags.skipInstall, "skip-install", skipInstallDefault, "skip installing dependencies")
	cmd.Flags().BoolVar(&flags.skipGit, "skip-git", false, "skip initializing a git repository")

	cmd.AddCommand(modules.Cmd(store))

	return cmd, nil
}

func runCreate(cmd *cobra.Command, projectName string, flags *rootFlags, config *scaffoldconfig.Config, store *registry.Store) error {
	ctx := cmd.Context()

	sel, err := resolver.ParseSelection(flags.modules)
	if err != nil {
		return err
	}
	layout, err := pagegen.ParseLayout(flags.layout)
	if err != nil {
		return err
	}
	pmRaw := flags.packageManager
	if !cmd.Flags().Changed("package-manager") && config.PackageManager != "" {
		pmRaw = config.PackageManager
	}
	pm, err := pkginstall.ParsePackageManager(pmRaw)
	if err != nil {
		return err
	}

	if flags.template != "" {
		config.TemplateURL = flags.template
	}
	if flags.ref != "" {
		config.TemplateRef = flags.ref
	}
	if flags.licenseKey != "" {
		config.LicenseKey = flags.licenseKey
	}

	targetPath := flags.path
	if targetPath == "" {
		targetPath = projectName
	}
	targetPath, err = filepath.Abs(targetPath)
	if err != nil {
		return err
	}

	opts := &composeopts.Options{
		ProjectName:    projectName,
		TargetPath:     targetPath,
		Demo:           !flags.noDemo,
		Selection:      sel,
		MultiLanguage:  flags.i18n,
		Pages:          flags.pages,
		Layout:         layout,
		PackageManager: pm,
		SkipInstall:    flags.skipInstall,
		SkipGit:        flags.skipGit,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	reg, err := store.Get(ctx)
	if err != nil {
		return err
	}
	if err := resolver.ValidateSelection(sel, reg, config.LicenseKey != ""); err != nil {
		return err
	}

	// options are good; failures from here on are composition failures
	cmd.SilenceUsage = true

	fetcher := &templatefetch.GitFetcher{URL: config.TemplateURL, Ref: config.TemplateRef}
	installer := &pkginstall.ExecInstaller{Manager: pm}

	result, err := composer.New(config, reg, fetcher, installer, cmd).Compose(ctx, opts)
	if err != nil {
		return err
	}

	cmd.Println(color.GreenString("\nCreated %s", projectName))
	cmd.Println(result.Summary())
	cmd.Println(nextSteps(opts, pm))
	return nil
}

func nextSteps(opts *composeopts.Options, pm pkginstall.PackageManager) string {
	steps := fmt.Sprintf("Next steps:\n  cd %s\n", opts.TargetPath)
	if opts.SkipInstall {
		steps += fmt.Sprintf("  %s install\n", pm)
	}
	steps += fmt.Sprintf("  %s run dev\n", pm)
	return steps
}
