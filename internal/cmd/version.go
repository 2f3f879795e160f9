package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	Version     = "1.0.0"
	ProjectName = "checktidy"
)

const banner = `
  ┌─────────────────────┐
  │  checktidy  ✂ 80 ✂  │
  └─────────────────────┘
   Keep your lines short
`

func newVersionCmd() *cobra.Command {
	var showBanner bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if showBanner {
				showArt(cmd.OutOrStdout())
			}
			showVersion(cmd.OutOrStdout())
		},
	}
	versionCmd.Flags().BoolVar(&showBanner, "logo", false, "show the checktidy banner")

	return versionCmd
}

func showArt(w io.Writer) {
	fmt.Fprint(w, color.CyanString(banner))
}

func showVersion(w io.Writer) {
	fmt.Fprintf(w, "%s v%s\n", ProjectName, Version)
	fmt.Fprintf(w, "Checkstyle LineLength triage and Java source cleanup\n")
	fmt.Fprintf(w, "Built with Go\n")
}
