package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-gym/internal/agent"
	"github.com/vovakirdan/arcade-gym/internal/env"
	"github.com/vovakirdan/arcade-gym/internal/sim"
	"github.com/vovakirdan/arcade-gym/internal/storage"
)

var (
	flagEvalPolicy   string
	flagEvalEpisodes int
	flagEvalMaxSteps int
	flagEvalNoSave   bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <game>",
	Short: "Evaluate a policy over several episodes",
	Long: `Play episodes of Breakout or Pong as fast as possible with a policy and
report the reward of each. An episode ends when a point is scored or a
life is lost. Results are stored with the scores unless --no-save is set.

Examples:
  arcadegym eval pong --policy chase --episodes 50
  arcadegym eval breakout --policy lua:bot.lua --max-steps 5000 --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	f := evalCmd.Flags()
	f.StringVar(&flagEvalPolicy, "policy", policyChase, "Policy: chase, random or lua:<path>")
	f.IntVar(&flagEvalEpisodes, "episodes", 10, "Number of episodes")
	f.IntVar(&flagEvalMaxSteps, "max-steps", 10000, "Step limit per episode (0 = unlimited)")
	f.BoolVar(&flagEvalNoSave, "no-save", false, "Do not store the run")
}

func runEval(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	setup, err := loadSetup(gameID)
	if err != nil {
		return err
	}
	seed := resolveSeed()
	e, err := env.New(setup.Sim, sim.NewRand(seed), env.Options{ChaseDeadZone: setup.ChaseDeadZone})
	if err != nil {
		return err
	}
	policy, closePolicy, err := buildPolicy(flagEvalPolicy, setup, seed)
	if err != nil {
		return err
	}
	defer closePolicy()

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := agent.Evaluate(ctx, e, policy, flagEvalEpisodes, flagEvalMaxSteps)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if len(results) == 0 {
		return errors.New("no episodes finished")
	}
	mean := agent.MeanReward(results)

	fmt.Printf("Evaluation - %s (policy %s, seed %d)\n", e.Name(), flagEvalPolicy, seed)
	fmt.Println()
	printEpisodes(toRecords(results))
	fmt.Println()
	fmt.Printf("Mean reward: %.3f over %d episodes\n", mean, len(results))

	if flagEvalNoSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	id, err := store.SaveRun(context.Background(), storage.EvalRun{
		GameID:     gameID,
		Policy:     flagEvalPolicy,
		Seed:       seed,
		Episodes:   len(results),
		MeanReward: mean,
	}, toRecords(results))
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	fmt.Printf("Saved run %s\n", id)
	return nil
}

func toRecords(results []agent.EpisodeResult) []storage.EpisodeRecord {
	recs := make([]storage.EpisodeRecord, len(results))
	for i, r := range results {
		recs[i] = storage.EpisodeRecord{
			Episode:   r.Episode,
			Reward:    r.Reward,
			Steps:     r.Steps,
			Truncated: r.Truncated,
		}
	}
	return recs
}

func printEpisodes(recs []storage.EpisodeRecord) {
	fmt.Printf("  %-7s  %-8s  %-7s  %s\n", "Episode", "Reward", "Steps", "Truncated")
	fmt.Printf("  %-7s  %-8s  %-7s  %s\n", "-------", "------", "-----", "---------")
	for _, r := range recs {
		trunc := ""
		if r.Truncated {
			trunc = "yes"
		}
		fmt.Printf("  %-7d  %-8.2f  %-7d  %s\n", r.Episode, r.Reward, r.Steps, trunc)
	}
}
