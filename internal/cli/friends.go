package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/freeplay/internal/api/response"
)

func newFriendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "friends",
		Short: "List friends and who is online",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.FriendsResponse

			if err := client.Get("/api/v1/friends", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
