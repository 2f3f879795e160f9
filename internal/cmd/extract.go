package cmd

import (
	"fmt"
	"io"
	"strings"

	"checktidy/internal/analyzer"
	"checktidy/internal/checkstyle"
	"checktidy/internal/history"
	"checktidy/internal/leaderboard"
	"checktidy/internal/report"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type extractOptions struct {
	out        string
	top        int
	lineLimit  int
	file       string
	logHistory bool
	logDir     string
}

func newExtractCmd(opts *rootOptions) *cobra.Command {
	eo := &extractOptions{}

	extractCmd := &cobra.Command{
		Use:   "extract [LOG]",
		Short: "Rank files by LineLength violations and write a Markdown worklist",
		Long: `Read a checkstyle log, keep the LineLength warnings, group them by file
and write a ranked Markdown worklist. A log that cannot be read is reported
and treated as empty.

Examples:
  checktidy extract
  checktidy extract build/checkstyle.log --out todo.md --top 10
  checktidy extract --file ServiceUtilsTest.java`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, opts, eo, args)
		},
	}

	flags := extractCmd.Flags()
	flags.StringVarP(&eo.out, "out", "o", "", "Markdown file to write (default from config: todo-long.md)")
	flags.IntVarP(&eo.top, "top", "n", 0, "number of files in the console summary (default from config: 5)")
	flags.IntVar(&eo.lineLimit, "line-limit", 0, "limit named in the warnings (default from config: 80)")
	flags.StringVarP(&eo.file, "file", "f", "", "list every violation recorded for one file")
	flags.BoolVar(&eo.logHistory, "log-history", false, "append the leaderboard to a timestamped CSV")
	flags.StringVar(&eo.logDir, "log-dir", "", "directory for --log-history CSV files (default from config)")

	return extractCmd
}

func runExtract(cmd *cobra.Command, opts *rootOptions, eo *extractOptions, args []string) error {
	cfg := opts.cfg
	w := cmd.OutOrStdout()

	logPath := cfg.LogFile
	if len(args) == 1 {
		logPath = args[0]
	}
	outPath := cfg.OutputFile
	if eo.out != "" {
		outPath = eo.out
	}
	topN := cfg.TopFiles
	if cmd.Flags().Changed("top") {
		topN = eo.top
	}
	limit := cfg.LineLimit
	if cmd.Flags().Changed("line-limit") {
		limit = eo.lineLimit
	}

	fmt.Fprintf(w, "Extracting LineLength violations from %s...\n", logPath)
	violations, err := checkstyle.ReadLineLengthLog(logPath, limit)
	if err != nil {
		fmt.Fprintln(w, color.RedString("Error reading file: %v", err))
	}

	a := analyzer.New()
	skipped := 0
	for _, v := range violations {
		if !a.AddWithConfig(v, cfg) {
			skipped++
		}
	}
	if skipped > 0 {
		logrus.WithField("count", skipped).Info("skipped violations in ignored files")
	}

	entries := leaderboard.GenerateFileLeaderboard(a.Files())

	fmt.Fprintf(w, "Creating %s...\n", outPath)
	if err := report.WriteTodoMarkdown(outPath, entries, cfg.CompletedFiles); err != nil {
		return err
	}

	leaderboard.PrintTotals(w, entries)
	fmt.Fprintln(w, color.GreenString("Saved to %s", outPath))
	leaderboard.PrintTopFiles(w, entries, topN)

	if eo.file != "" {
		printFileDetails(w, a, eo.file, limit)
	}

	if eo.logHistory {
		dir := cfg.HistoryDir
		if eo.logDir != "" {
			dir = eo.logDir
		}
		if err := history.WriteLineLengthLeaderboardCSV(dir, entries); err != nil {
			fmt.Fprintf(w, "❌ Failed to log leaderboard: %v\n", err)
		} else {
			fmt.Fprintf(w, "✅ Leaderboard logged to %s\n", dir)
		}
	}

	return nil
}

func printFileDetails(w io.Writer, a *analyzer.Analyzer, file string, limit int) {
	fmt.Fprintln(w)
	if stats, ok := a.Lookup(file); ok {
		leaderboard.PrintFileDetails(w, stats, limit)
		return
	}

	fmt.Fprintf(w, "No LineLength violations recorded for %s\n", file)
	if suggestions := leaderboard.SuggestFiles(a.FileNames(), file); len(suggestions) > 0 {
		fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
	}
}
