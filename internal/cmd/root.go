package cmd

import (
	"errors"
	"fmt"
	"os"

	"checktidy/internal/config"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errFailed makes Execute exit 1 without printing anything further; the command
// has already reported what went wrong.
var errFailed = errors.New("command failed")

type rootOptions struct {
	cfgFile string
	verbose bool
	quiet   bool

	cfg *config.Config
}

// NewRootCmd builds the checktidy command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "checktidy",
		Short: "checktidy - checkstyle LineLength triage and source cleanup",
		Long: `checktidy summarizes checkstyle LineLength warnings into a ranked Markdown
worklist and repairs common text damage in Java sources: trailing whitespace,
literal "\n" sequences left by bad edits, and byte-order marks that ate the
first letter of a package declaration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file (default: .checktidy.rc in the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress bars and informational logs")

	rootCmd.AddCommand(
		newExtractCmd(opts),
		newCountCmd(),
		newTrailingCmd(),
		newTrailingDefaultCmd(opts),
		newNewlinesCmd(opts),
		newBOMCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command and exits 1 on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		}
		os.Exit(1)
	}
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	switch {
	case o.verbose:
		logrus.SetLevel(logrus.DebugLevel)
	case o.quiet:
		logrus.SetLevel(logrus.WarnLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}

	if o.cfgFile != "" {
		cfg, err := config.LoadConfigFromFile(o.cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		o.cfg = cfg
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Warn("failed to load config, using defaults")
		cfg = config.NewConfig()
		cfg.ApplyEnv()
	}
	o.cfg = cfg
	return nil
}
