package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"gtfsvalidator/internal/notice"
	"gtfsvalidator/internal/validate"
)

type jsonReport struct {
	RunID      string          `json:"runId"`
	Input      string          `json:"input"`
	DurationMS int64           `json:"durationMs"`
	Errors     int             `json:"errors"`
	Warnings   int             `json:"warnings"`
	Counts     map[string]int  `json:"entityCounts"`
	Notices    []notice.Notice `json:"notices"`
}

func writeResult(w io.Writer, format, input string, res *validate.Result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		notices := res.Notices
		if notices == nil {
			notices = []notice.Notice{}
		}
		return enc.Encode(jsonReport{
			RunID:      res.RunID.String(),
			Input:      input,
			DurationMS: res.Duration.Milliseconds(),
			Errors:     res.Errors(),
			Warnings:   res.Warnings(),
			Counts:     res.Counts,
			Notices:    notices,
		})
	}
	return writeText(w, input, res)
}

func writeText(w io.Writer, input string, res *validate.Result) error {
	fmt.Fprintf(w, "Validated %s in %s (run %s)\n\n", input, res.Duration.Round(time.Millisecond), res.RunID)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, n := range res.Notices {
		where := n.Filename
		if n.Row > 0 {
			where = fmt.Sprintf("%s:%d", n.Filename, n.Row)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.Severity(), n.Code, where, n.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(res.Counts) > 0 {
		fmt.Fprintln(w, "\nEntities:")
		files := make([]string, 0, len(res.Counts))
		for f := range res.Counts {
			files = append(files, f)
		}
		sort.Strings(files)
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, f := range files {
			if res.Counts[f] > 0 {
				fmt.Fprintf(tw, "  %s\t%d\n", f, res.Counts[f])
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%d notices: %d errors, %d warnings\n", len(res.Notices), res.Errors(), res.Warnings())
	return err
}
