package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"gtfsvalidator/internal/storage"
)

// runs: list reports stored by validate --report-db.
func runsCmd() *cobra.Command {
	var (
		reportDB string
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored validation runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("report-db") {
				cfg.ReportDB = reportDB
			}
			if cfg.ReportDB == "" {
				return errors.New("no report database: use --report-db or set GTFSVALIDATOR_REPORT_DB")
			}

			db, err := storage.Open(cmd.Context(), cfg.ReportDB, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RUN\tSTARTED\tDURATION\tERRORS\tWARNINGS\tINPUT")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
					r.RunID, r.StartedAt.Local().Format(time.DateTime), r.Duration, r.Errors, r.Warnings, r.Input)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&reportDB, "report-db", "", "SQLite report database")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to show")
	return cmd
}
