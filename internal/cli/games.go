package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/freeplay/internal/api/response"
)

func newGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Browse the catalog",
	}

	cmd.AddCommand(newGamesListCmd())
	cmd.AddCommand(newGamesShowCmd())

	return cmd
}

func newGamesListCmd() *cobra.Command {
	var query, genre, section string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GamesResponse

			q := queryOf("q", query, "genre", genre, "section", section)
			if err := client.Get("/api/v1/games", q, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Title search (case-insensitive substring)")
	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Genre tag, or all")
	cmd.Flags().StringVar(&section, "section", "", "Storefront section: home or store")

	return cmd
}

func newGamesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a title. Unknown ids show the default title.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid game id %q", args[0])
			}

			var result response.GameDetailResponse
			if err := client.Get("/api/v1/games/"+strconv.Itoa(id), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(GameDetail{RequestedID: id, GameDetailResponse: result})
			return nil
		},
	}
}
