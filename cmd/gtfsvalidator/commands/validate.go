package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"gtfsvalidator/internal/feed"
	"gtfsvalidator/internal/metrics"
	"gtfsvalidator/internal/notice"
	"gtfsvalidator/internal/schema"
	"gtfsvalidator/internal/storage"
	"gtfsvalidator/internal/validate"
)

// validate [input]: validate a zip, a directory or a URL.
func validateCmd() *cobra.Command {
	var (
		reportDB    string
		metricsFile string
		output      string
		workDir     string
		failOnError bool
		keepRuns    int
	)

	cmd := &cobra.Command{
		Use:   "validate [input]",
		Short: "Validate a GTFS feed",
		Long: "Validate a GTFS feed given as a .zip archive, a directory or an http(s) URL.\n" +
			"Without an argument the input comes from GTFSVALIDATOR_INPUT or the config file.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("report-db") {
				cfg.ReportDB = reportDB
			}
			if flags.Changed("metrics-file") {
				cfg.MetricsFile = metricsFile
			}
			if flags.Changed("output") {
				cfg.OutputFormat = output
			}
			if flags.Changed("work-dir") {
				cfg.WorkDir = workDir
			}
			if flags.Changed("fail-on-error") {
				cfg.FailOnError = failOnError
			}
			if flags.Changed("keep-runs") {
				cfg.KeepRuns = keepRuns
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Input == "" {
				return errors.New("no input: pass a path or URL, or set GTFSVALIDATOR_INPUT")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runValidate(ctx, cmd)
		},
	}

	cmd.Flags().StringVar(&reportDB, "report-db", "", "SQLite file to store the report in")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "report format: text or json")
	cmd.Flags().StringVar(&workDir, "work-dir", "", "directory for downloaded feeds")
	cmd.Flags().BoolVar(&failOnError, "fail-on-error", false, "exit 1 when the feed has error notices")
	cmd.Flags().IntVar(&keepRuns, "keep-runs", 0, "runs to keep in the report database (0 keeps all)")
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command) error {
	started := time.Now()
	input := cfg.Input

	path := input
	if feed.IsRemote(input) {
		d := feed.NewDownloader(nil, cfg.WorkDir, logger)
		p, err := d.Download(ctx, input)
		if err != nil {
			return fmt.Errorf("download feed: %w", err)
		}
		defer os.Remove(p)
		path = p
	}

	f, err := feed.Open(path, logger)
	if err != nil {
		// Still report the failure the way a validation finding is reported.
		res := &validate.Result{
			RunID:    uuid.New(),
			Notices:  []notice.Notice{notice.CannotOpenFeed(input, err)},
			Counts:   map[string]int{},
			Duration: time.Since(started),
		}
		if werr := writeResult(cmd.OutOrStdout(), cfg.OutputFormat, input, res); werr != nil {
			logger.Error("failed to write report", "error", werr)
		}
		return fmt.Errorf("open feed: %w", err)
	}
	defer f.Close()

	var m *metrics.Metrics
	if cfg.MetricsFile != "" {
		m = metrics.New(prometheus.NewRegistry())
	}

	v, err := validate.New(schema.Default(), validate.Options{
		TimezoneCacheSize: cfg.TimezoneCacheSize,
		Metrics:           m,
	}, logger)
	if err != nil {
		return err
	}

	res, err := v.Run(ctx, f)
	if err != nil {
		// A cancelled run still reports what it found before stopping.
		if res != nil {
			if werr := writeResult(cmd.OutOrStdout(), cfg.OutputFormat, input, res); werr != nil {
				logger.Error("failed to write report", "error", werr)
			}
		}
		return fmt.Errorf("validate %s: %w", input, err)
	}

	if err := writeResult(cmd.OutOrStdout(), cfg.OutputFormat, input, res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.ReportDB != "" {
		if err := saveReport(ctx, input, started, res); err != nil {
			return err
		}
	}

	if m != nil {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		logger.Debug("metrics written", "path", cfg.MetricsFile)
	}

	if cfg.FailOnError && res.Errors() > 0 {
		return errNoticesFound
	}
	return nil
}

func saveReport(ctx context.Context, input string, started time.Time, res *validate.Result) error {
	db, err := storage.Open(ctx, cfg.ReportDB, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SaveReport(ctx, storage.Report{
		RunID:     res.RunID,
		Input:     input,
		StartedAt: started,
		Duration:  res.Duration,
		Notices:   res.Notices,
		Counts:    res.Counts,
	}); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	if cfg.KeepRuns > 0 {
		n, err := db.PruneRuns(ctx, cfg.KeepRuns)
		if err != nil {
			return err
		}
		if n > 0 {
			logger.Info("pruned old runs", "removed", n, "kept", cfg.KeepRuns)
		}
	}
	return nil
}
