package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/freeplay/internal/api/response"
)

func newStoreCmd() *cobra.Command {
	var query, category string

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Show featured titles, deals and the store grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.StoreResponse

			q := queryOf("q", query, "category", category)
			if err := client.Get("/api/v1/store", q, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Title search (case-insensitive substring)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category tag, or all")

	return cmd
}
