// Package commands implements the blocklua CLI.
package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blocklua-lang/blocklua/blocks"
	"github.com/blocklua-lang/blocklua/internal/cli/config"
	"github.com/blocklua-lang/blocklua/internal/cli/ui"
	"github.com/blocklua-lang/blocklua/pkg/registry"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "blocklua",
		Short: "Block definitions and Lua code generation for game scripting",
		Long: color.CyanString(`blocklua - visual programming blocks for a Lua scripting API

blocklua turns metadata-driven block definitions into Lua source code.
Block sets describe each block once (name, colour, connectors, parameters)
and the generator emits the matching API calls.

Commands cover listing the registered block types, generating Lua from a
saved program, watching a program for changes, and serving the registry to
an editor frontend.`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewGenerateCommand())
	rootCmd.AddCommand(NewWatchCommand())
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewNewCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)

			titleColor.Print("blocklua version: ")
			valueColor.Println(Version)

			titleColor.Print("Git commit: ")
			valueColor.Println(GitCommit)

			titleColor.Print("Build date: ")
			valueColor.Println(BuildDate)

			titleColor.Print("Go version: ")
			valueColor.Println(runtime.Version())
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(rootCmd.ErrOrStderr(), err, false)
		return err
	}
	return nil
}

// loadRegistry loads project config and registers the built-in block sets.
func loadRegistry() (*config.Config, *registry.Registry, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, nil, err
	}
	reg := registry.New(nil)
	if err := blocks.RegisterAll(reg, blocks.Options{BaseHelpURL: cfg.BaseHelpURL}); err != nil {
		return nil, nil, err
	}
	return cfg, reg, nil
}
