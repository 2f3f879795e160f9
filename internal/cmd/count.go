package cmd

import (
	"fmt"
	"os"

	"checktidy/internal/checkstyle"
	"checktidy/internal/leaderboard"

	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	var input string

	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Count LineLength warnings per file name",
		Long: `Count LineLength warnings per Java file name, keyed on the name alone.
Without --input the bundled sample log is counted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := checkstyle.SampleLog
			if input != "" {
				data, err := os.ReadFile(input)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", input, err)
				}
				text = string(data)
			}

			leaderboard.PrintFileCounts(cmd.OutOrStdout(), checkstyle.CountLineLengthFiles(text))
			return nil
		},
	}

	countCmd.Flags().StringVarP(&input, "input", "i", "", "log file to count instead of the bundled sample")

	return countCmd
}
