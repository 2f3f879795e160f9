package cmd

import (
	"fmt"
	"os"

	"checktidy/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const defaultConfigFile = ".checktidy.rc"

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Generate or inspect the checktidy configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [FILE]",
		Short: "Write a sample " + defaultConfigFile,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := defaultConfigFile
			if len(args) == 1 {
				filename = args[0]
			}
			if _, err := os.Stat(filename); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", filename)
			}
			if err := config.GenerateConfigFile(filename); err != nil {
				return fmt.Errorf("failed to generate config file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Generated configuration file: %s\n", filename)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			opts.cfg.PrintSummary(w)
			if len(opts.cfg.CustomSettings) > 0 {
				fmt.Fprintf(w, "  • Custom settings: %s\n", color.YellowString("%d", len(opts.cfg.CustomSettings)))
			}
			return nil
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}
