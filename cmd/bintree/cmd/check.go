package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/bintree/check"
)

func newCheckCmd(a *bintreeApp) *cobra.Command {
	config := &check.Config{}
	var cmd = &cobra.Command{
		Use:   "check",
		Short: "Runs randomized AVL tree invariant checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, config)
		},
	}
	cmd.Flags().IntVar(&config.Rounds, "rounds", 100, "number of rounds")
	cmd.Flags().IntVar(&config.Size, "size", 1000, "number of keys inserted in each round")
	cmd.Flags().IntVar(&config.Workers, "workers", 0, "rounds running at once (default GOMAXPROCS)")
	cmd.Flags().Int64VarP(&config.Seed, "seed", "s", 0, "seed (default current unix time in ns)")
	return cmd
}

func (a *bintreeApp) runCheck(cmd *cobra.Command, config *check.Config) error {
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	config.Logger = &a.logger

	a.logger.Info().
		Int("rounds", config.Rounds).
		Int("size", config.Size).
		Int64("seed", config.Seed).
		Msg("starting check")

	report, err := check.Run(cmd.Context(), *config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rounds: %d inserts: %d removals: %d max height: %d\n",
		report.Rounds, report.Inserts, report.Removals, report.MaxHeight)
	return nil
}
