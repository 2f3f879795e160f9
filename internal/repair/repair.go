package repair

import (
	"fmt"
	"io"
	"os"

	"checktidy/internal/sources"
	"checktidy/internal/textfix"
	"checktidy/internal/types"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

const (
	KindEscapedNewlines = "escaped-newlines"
	KindByteOrderMark   = "byte-order-mark"
)

type Options struct {
	Extension    string
	BackupSuffix string // empty disables backups
	NormalizeEOL bool
	Ignore       sources.IgnoreFunc
	Out          io.Writer
	Progress     bool
	ProgressOut  io.Writer // defaults to os.Stderr
}

type transform func(content string) (string, bool)

// EscapedNewlines rewrites every file under root that contains literal \r\n or \n
// sequences, keeping a backup of the original next to it.
func EscapedNewlines(root string, opts Options) (*types.RepairSummary, error) {
	fix := textfix.RepairEscapedNewlines
	if opts.NormalizeEOL {
		fix = func(content string) (string, bool) {
			repaired, changed := textfix.RepairEscapedNewlines(content)
			if !changed {
				return content, false
			}
			repaired = textfix.NormalizeLineEndings(repaired, "\r\n")
			return repaired, repaired != content
		}
	}
	return run(KindEscapedNewlines, root, opts, fix, "Fixed %s\n")
}

// ByteOrderMarks repairs Java sources whose first line carries a BOM or lost the
// "p" of its package declaration.
func ByteOrderMarks(root string, opts Options) (*types.RepairSummary, error) {
	return run(KindByteOrderMark, root, opts, textfix.RepairByteOrderMark, "Fixed: %s\n")
}

func run(kind, root string, opts Options, fix transform, fixedFormat string) (*types.RepairSummary, error) {
	files, err := sources.FindFiles(root, opts.Extension, opts.Ignore)
	if err != nil {
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	summary := types.NewRepairSummary(kind, root)

	var bar *progressbar.ProgressBar
	if opts.Progress && len(files) > 0 {
		progressOut := opts.ProgressOut
		if progressOut == nil {
			progressOut = os.Stderr
		}
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(progressOut),
			progressbar.OptionSetDescription(kind),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, path := range files {
		summary.Scanned++

		fixed, err := repairFile(path, opts.BackupSuffix, fix)
		switch {
		case err != nil:
			summary.Failed[path] = err
			logrus.WithField("path", path).WithError(err).Error("repair failed")
		case fixed:
			summary.Fixed = append(summary.Fixed, path)
			fmt.Fprint(out, color.GreenString(fixedFormat, path))
		default:
			logrus.WithField("path", path).Debug("unchanged")
		}

		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	return summary, nil
}

// repairFile computes the new content in memory and only touches the disk when it
// differs: backup first, then an atomic replace of the original.
func repairFile(path, backupSuffix string, fix transform) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	original := string(data)
	repaired, changed := fix(original)
	if !changed || repaired == original {
		return false, nil
	}

	perm := info.Mode().Perm()
	if backupSuffix != "" {
		if _, err := textfix.WriteBackup(path, backupSuffix, data, perm); err != nil {
			return false, err
		}
	}

	if err := textfix.WriteFileAtomic(path, []byte(repaired), perm); err != nil {
		return false, err
	}
	return true, nil
}
