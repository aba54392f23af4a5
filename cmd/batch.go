package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/shuffle/internal/batch"
	"github.com/conneroisu/shuffle/internal/watcher"
)

const watchDebounce = 200 * time.Millisecond

func newBatchCommand(a *app) *cobra.Command {
	batchCmd := &cobra.Command{
		Use:   "batch <case file>",
		Short: "Check every shuffle listed in a YAML or JSON file",
		Long: `Check every case listed in a YAML or JSON file. Cases run concurrently and
results are printed in input order.

Case file format:
  cases:
    - name: tournament          # optional
      first: TOURNAMENT
      second: DINNER
      shuffled: TDINOURNANMENTER
      expect: true              # optional; a mismatch fails the run

Examples:
  shuffle batch cases.yml
  shuffle batch cases.json --format json --workers 4
  shuffle batch cases.yml --strategy exact --watch`,
		Args: cobra.ExactArgs(1),
		RunE: a.runBatch,
	}

	addBatchFlags(batchCmd.Flags())

	return batchCmd
}

func (a *app) runBatch(cmd *cobra.Command, args []string) error {
	if err := a.setup(cmd, batchFlagKeys); err != nil {
		return err
	}
	cmd.SilenceUsage = true

	path := args[0]
	runner := batch.NewRunner(a.validator(), a.cfg.Batch.Workers, a.logger)

	ctx := contextOrBackground(cmd.Context())

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		report, err := a.runBatchOnce(ctx, cmd.OutOrStdout(), runner, path)
		if err != nil {
			return err
		}
		return report.Err()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	return a.watchBatch(ctx, cmd.OutOrStdout(), runner, path)
}

func (a *app) runBatchOnce(ctx context.Context, w io.Writer, runner *batch.Runner, path string) (*batch.Report, error) {
	cases, err := batch.ReadFile(path)
	if err != nil {
		return nil, err
	}

	report, err := runner.Run(ctx, cases)
	if err != nil {
		return nil, err
	}

	return report, writeReport(w, a.cfg.Batch.Format, report)
}

// watchBatch runs the case file now and again after every change until ctx
// is done. Failures are logged so a broken edit does not end the session.
func (a *app) watchBatch(ctx context.Context, w io.Writer, runner *batch.Runner, path string) error {
	fw, err := watcher.NewFileWatcher(watchDebounce, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.WatchFile(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	rerun := func(ctx context.Context, events []watcher.ChangeEvent) error {
		for _, e := range events {
			if e.Type == watcher.EventTypeDeleted {
				a.logger.Warn(ctx, nil, "Case file removed, waiting for it to reappear", "path", path)
				return nil
			}
		}
		report, err := a.runBatchOnce(ctx, w, runner, path)
		if err != nil {
			return err
		}
		if err := report.Err(); err != nil {
			a.logger.Warn(ctx, err, "Expectations not met")
		}
		return nil
	}
	fw.AddHandler(rerun)

	if err := rerun(ctx, nil); err != nil {
		a.logger.Error(ctx, err, "Batch run failed")
	}
	a.logger.Info(ctx, "Watching case file", "path", path)

	return fw.Run(ctx)
}

func writeReport(w io.Writer, format string, report *batch.Report) error {
	switch format {
	case "json":
		return writeJSON(w, report)
	case "yaml":
		return writeYAML(w, report)
	default:
		return writeReportTable(w, report)
	}
}

func writeReportTable(w io.Writer, report *batch.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "CASE\tVERDICT\tREASON\tINDEX\tCHAR\tEXPECTED")
	fmt.Fprintln(tw, "----\t-------\t------\t-----\t----\t--------")
	for _, o := range report.Outcomes {
		index := "-"
		if o.Index >= 0 {
			index = strconv.Itoa(o.Index)
		}
		char := o.Char
		if char == "" {
			char = "-"
		}
		expected := "-"
		if o.Expect != nil {
			expected = "ok"
			if !o.Passed {
				expected = "FAILED"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			o.Name, verdictLine(o.Valid), o.Reason, index, char, expected)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d cases: %d correct, %d incorrect, %d failed expectations (strategy %s)\n",
		report.Total, report.Valid, report.Invalid, report.Failed, report.Strategy)
	return err
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
