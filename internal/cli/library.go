package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/freeplay/internal/api/response"
)

func newLibraryCmd() *cobra.Command {
	var query, sort string

	cmd := &cobra.Command{
		Use:   "library",
		Short: "Show the personal library with totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.LibraryResponse

			q := queryOf("q", query, "sort", sort)
			if err := client.Get("/api/v1/library", q, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Title search (case-insensitive substring)")
	cmd.Flags().StringVarP(&sort, "sort", "s", "", "Ordering: recent, hours, name")

	return cmd
}
