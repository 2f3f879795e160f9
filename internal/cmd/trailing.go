package cmd

import (
	"fmt"

	"checktidy/internal/textfix"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newTrailingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trailing <file_path>",
		Short: "Strip trailing whitespace from one file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "Usage: %s <file_path>\n", cmd.CommandPath())
				return errFailed
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, textfix.RemoveTrailingSpaces(args[0]))
		},
	}
}

func newTrailingDefaultCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trailing-default",
		Short: "Strip trailing whitespace from the configured target file",
		Long: `Strip trailing whitespace from the file named by trailing-target in the
config (a fixed test source by default).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, textfix.RewriteTrailingSpaces(opts.cfg.TrailingTarget))
		},
	}
}

func printResult(cmd *cobra.Command, result textfix.Result) error {
	w := cmd.OutOrStdout()
	if !result.OK {
		fmt.Fprintln(w, color.New(color.FgRed).Sprint(result.Message))
		return errFailed
	}
	fmt.Fprintln(w, color.New(color.FgGreen).Sprint(result.Message))
	return nil
}
