package cmd

import (
	"errors"
	"fmt"
	"sort"

	"checktidy/internal/history"
	"checktidy/internal/repair"
	"checktidy/internal/sources"
	"checktidy/internal/types"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type repairFlags struct {
	extension    string
	backupSuffix string
	noBackup     bool
	normalizeEOL bool
	logHistory   bool
	logDir       string
}

func (f *repairFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.extension, "ext", "", "file extension to scan (default from config: .java)")
	flags.StringVar(&f.backupSuffix, "backup-suffix", "", "suffix for backup copies (default from config: .bak)")
	flags.BoolVar(&f.noBackup, "no-backup", false, "rewrite files without keeping a backup")
	flags.BoolVar(&f.logHistory, "log-history", false, "record fixed and failed files in a timestamped CSV")
	flags.StringVar(&f.logDir, "log-dir", "", "directory for --log-history CSV files (default from config)")
}

func (f *repairFlags) options(cmd *cobra.Command, opts *rootOptions) repair.Options {
	cfg := opts.cfg

	o := repair.Options{
		Extension:    cfg.Extension,
		BackupSuffix: cfg.BackupSuffix,
		NormalizeEOL: cfg.NormalizeEOL,
		Ignore:       cfg.ShouldIgnoreSource,
		Out:          cmd.OutOrStdout(),
		Progress:     !opts.quiet,
		ProgressOut:  cmd.ErrOrStderr(),
	}
	if f.extension != "" {
		o.Extension = f.extension
	}
	if f.backupSuffix != "" {
		o.BackupSuffix = f.backupSuffix
	}
	if f.noBackup {
		o.BackupSuffix = ""
	}
	if cmd.Flags().Changed("normalize-eol") {
		o.NormalizeEOL = f.normalizeEOL
	}
	return o
}

// finish reports per-file failures and the optional CSV log. Any failed file
// makes the command exit 1 once every file has been tried.
func (f *repairFlags) finish(cmd *cobra.Command, opts *rootOptions, summary *types.RepairSummary) error {
	w := cmd.OutOrStdout()

	if f.logHistory {
		dir := opts.cfg.HistoryDir
		if f.logDir != "" {
			dir = f.logDir
		}
		if err := history.WriteRepairLogCSV(dir, summary); err != nil {
			fmt.Fprintf(w, "❌ Failed to log repairs: %v\n", err)
		} else {
			fmt.Fprintf(w, "✅ Repairs logged to %s\n", dir)
		}
	}

	if len(summary.Failed) == 0 {
		return nil
	}

	paths := make([]string, 0, len(summary.Failed))
	for path := range summary.Failed {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		fmt.Fprintln(w, color.RedString("Error fixing %s: %v", path, summary.Failed[path]))
	}
	return errFailed
}

func newNewlinesCmd(opts *rootOptions) *cobra.Command {
	rf := &repairFlags{}

	newlinesCmd := &cobra.Command{
		Use:   "newlines [ROOT]",
		Short: `Turn literal "\n" and "\r\n" sequences into real line breaks`,
		Long: `Walk ROOT (default from config: src/test/java) and replace the two-character
sequences \r\n and \n with real CRLF line breaks in every matching file. Changed
files get a backup copy first and are then replaced atomically.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := opts.cfg.TestRoot
			if len(args) == 1 {
				root = args[0]
			}

			w := cmd.OutOrStdout()
			summary, err := repair.EscapedNewlines(root, rf.options(cmd, opts))
			if errors.Is(err, sources.ErrRootNotFound) {
				fmt.Fprintln(w, "Test sources folder not found:", root)
				return errFailed
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(w, "Files fixed:", len(summary.Fixed))
			return rf.finish(cmd, opts, summary)
		},
	}

	rf.register(newlinesCmd)
	newlinesCmd.Flags().BoolVar(&rf.normalizeEOL, "normalize-eol", false, "convert every line ending of a fixed file to CRLF (default from config: true)")

	return newlinesCmd
}

func newBOMCmd(opts *rootOptions) *cobra.Command {
	rf := &repairFlags{}

	bomCmd := &cobra.Command{
		Use:   "bom [ROOT]",
		Short: "Remove byte-order marks and restore damaged package declarations",
		Long: `Walk ROOT (default from config: src) and repair Java files whose first line
starts with a byte-order mark, including files where the mark replaced the "p"
of "package".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := opts.cfg.BOMRoot
			if len(args) == 1 {
				root = args[0]
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Scanning for Java files with BOM or corrupted package declarations...")

			summary, err := repair.ByteOrderMarks(root, rf.options(cmd, opts))
			if errors.Is(err, sources.ErrRootNotFound) {
				fmt.Fprintln(w, "Source folder not found:", root)
				return errFailed
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(w, color.GreenString("BOM fix complete for all Java files!"))
			return rf.finish(cmd, opts, summary)
		},
	}

	rf.register(bomCmd)

	return bomCmd
}
