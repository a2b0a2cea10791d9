package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-gym/internal/storage"
)

var (
	flagEpisodesLimit int
	flagEpisodesRun   string
)

var episodesCmd = &cobra.Command{
	Use:   "episodes [game]",
	Short: "List stored evaluation runs",
	Long: `List recent evaluation runs, optionally for one game. With --run the
episodes of that run are printed instead.

Examples:
  arcadegym episodes
  arcadegym episodes pong --limit 5
  arcadegym episodes --run 5f0c...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEpisodes,
}

func init() {
	episodesCmd.Flags().IntVar(&flagEpisodesLimit, "limit", 20, "Maximum number of runs to list")
	episodesCmd.Flags().StringVar(&flagEpisodesRun, "run", "", "Show the episodes of this run ID")
}

func runEpisodes(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()
	ctx := cmdContext(cmd)

	if flagEpisodesRun != "" {
		recs, err := store.RunEpisodes(ctx, flagEpisodesRun)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			return fmt.Errorf("run %q not found", flagEpisodesRun)
		}
		fmt.Printf("Run %s\n\n", flagEpisodesRun)
		printEpisodes(recs)
		return nil
	}

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
	}
	runs, err := store.RecentRuns(ctx, gameID, flagEpisodesLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No evaluation runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'arcadegym eval <game>' to record one.")
		return nil
	}

	fmt.Printf("  %-36s  %-8s  %-16s  %-8s  %-8s  %s\n", "ID", "Game", "Policy", "Episodes", "Mean", "Date")
	fmt.Printf("  %-36s  %-8s  %-16s  %-8s  %-8s  %s\n", "--", "----", "------", "--------", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-8s  %-16s  %-8d  %-8.3f  %s\n",
			r.ID, r.GameID, r.Policy, r.Episodes, r.MeanReward, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
