package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/arcade-gym/internal/agent"
	"github.com/vovakirdan/arcade-gym/internal/gesture"
	"github.com/vovakirdan/arcade-gym/internal/loop"
	"github.com/vovakirdan/arcade-gym/internal/sim"
)

var (
	flagRunPolicy string
	flagRunTicks  uint64
)

var runCmd = &cobra.Command{
	Use:   "run <game>",
	Short: "Run a paddle game headless",
	Long: `Run Breakout or Pong without a screen at the configured tick rate.

The player paddle is driven by a policy. Frame summaries are logged at
debug level every log_every ticks, and point or life events at info.
The gesture policy reads landmark frames from --landmarks.

Examples:
  arcadegym run pong --policy chase --ticks 600
  arcadegym run breakout --policy lua:bot.lua --log-level debug
  arcadegym run breakout --policy gesture --landmarks frames.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().StringVar(&flagRunPolicy, "policy", policyChase, "Player policy: chase, random, gesture or lua:<path>")
	runCmd.Flags().Uint64Var(&flagRunTicks, "ticks", 0, "Stop after this many ticks (0 = until interrupted)")
	addGestureFlags(runCmd)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	setup, err := loadSetup(gameID)
	if err != nil {
		return err
	}
	seed := resolveSeed()
	world, err := sim.New(setup.Sim, sim.NewRand(seed))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	var player loop.ControlSource
	if flagRunPolicy == policyGesture {
		tracker, cell, mode, err := openTracker(gameID)
		if err != nil {
			return err
		}
		if tracker == nil {
			return errors.New("gesture policy needs --landmarks or a gesture.yaml source")
		}
		player = gesture.NewControl(cell, mode)
		g.Go(func() error { return tracker.Run(ctx) })
	} else {
		policy, closePolicy, err := buildPolicy(flagRunPolicy, setup, seed)
		if err != nil {
			return err
		}
		defer closePolicy()
		player = agent.NewSource(policy, world)
	}

	logger := app.logger.With("game", gameID)
	var points int
	driver, err := loop.New(world, loop.Options{
		TickRate:      app.loop.TickRate,
		MaxTicks:      flagRunTicks,
		Player:        player,
		ChaseDeadZone: setup.ChaseDeadZone,
		Render:        loop.Renderers(loop.LogRenderer(logger, app.loop.LogEvery)),
		OnOutcome: func(tick uint64, out sim.Outcome) {
			if !out.Done() {
				return
			}
			points++
			logger.Info("episode event", "tick", tick, "events", out.Events())
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}

	logger.Info("headless run", "policy", flagRunPolicy, "seed", seed, "tick_rate", app.loop.TickRate)
	g.Go(func() error {
		err := driver.Run(ctx)
		// The tracker may block on stdin; stop it with the loop.
		stop()
		return err
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	snap := world.Snapshot()
	fmt.Printf("Ran %s for %d ticks (seed %d, policy %s)\n", gameID, driver.Steps(), seed, flagRunPolicy)
	switch snap.Mode {
	case sim.ModePong:
		fmt.Printf("Score: %d - %d\n", snap.PlayerScore, snap.OpponentScore)
	default:
		fmt.Printf("Score: %d   Lives: %d   Blocks left: %d/%d\n",
			snap.PlayerScore, snap.Lives, len(snap.Blocks), snap.BlocksTotal)
	}
	fmt.Printf("Point or life events: %d\n", points)
	return nil
}

// cmdContext returns the command context or Background when Execute was
// called without one.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
