package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/freeplay/internal/model"
	"github.com/mcoot/freeplay/internal/seed"
	redisstorage "github.com/mcoot/freeplay/internal/storage/redis"
)

func newSeedCmd(defaults *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Validate and publish seed documents",
	}

	cmd.AddCommand(newSeedValidateCmd())
	cmd.AddCommand(newSeedPublishCmd(defaults))

	return cmd
}

func summarize(s *model.Seed, published bool) SeedSummary {
	return SeedSummary{
		Version:   s.Version,
		Games:     len(s.Games),
		Library:   len(s.Library),
		Friends:   len(s.Friends),
		Published: published,
	}
}

// printProblems lists every validation problem before returning the error
func printProblems(cmd *cobra.Command, err error) error {
	var verr *seed.ValidationError
	if errors.As(err, &verr) {
		for _, p := range verr.Problems {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", p)
		}
	}
	return err
}

func newSeedValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a seed document without publishing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := seed.LoadFile(args[0])
			if err != nil {
				return printProblems(cmd, err)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(summarize(s, false))
			return nil
		},
	}
}

func newSeedPublishCmd(defaults *Config) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "publish <file>",
		Short: "Validate a seed document and publish it to Redis",
		Long: `Validate a seed document and publish it to Redis.

Servers read the published seed once at startup. Instances that are already
running keep serving the seed they loaded; restart them to pick up the new one.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := seed.LoadFile(args[0])
			if err != nil {
				return printProblems(cmd, err)
			}

			redisCfg := redisstorage.DefaultConfig()
			redisCfg.URL = cfg.RedisURL
			redisCfg.SeedTTL = ttl
			store, err := redisstorage.New(redisCfg)
			if err != nil {
				return fmt.Errorf("connect to redis: %w", err)
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveSeed(cmd.Context(), s); err != nil {
				return fmt.Errorf("publish seed: %w", err)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(summarize(s, true))
			return nil
		},
	}

	cmd.Flags().String("redis-url", defaults.RedisURL, "Redis URL (env: FREEPLAY_REDIS_URL)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Expire the published seed after this long (0 keeps it)")

	return cmd
}
