package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gtfsvalidator/internal/schema"
)

// schema: print the embedded schema.
func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "List the GTFS files and columns that are validated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, f := range schema.Default().Files() {
				status := "optional"
				switch {
				case f.Required:
					status = "required"
				case f.Alternative != "":
					status = "required unless " + f.Alternative + " is present"
				}
				fmt.Fprintf(w, "%s (%s)\n", f.Name, status)

				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, c := range f.Columns {
					mark := ""
					if c.Required {
						mark = "required"
					}
					fmt.Fprintf(tw, "  %s\t%s\t%s\n", c.Name, c.Type, mark)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
}
