package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-gym/internal/config"
	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/gesture"
	"github.com/vovakirdan/arcade-gym/internal/platform/tui"
	"github.com/vovakirdan/arcade-gym/internal/registry"
	"github.com/vovakirdan/arcade-gym/internal/storage"

	_ "github.com/vovakirdan/arcade-gym/internal/games/breakout"
	_ "github.com/vovakirdan/arcade-gym/internal/games/pong"
	_ "github.com/vovakirdan/arcade-gym/internal/games/tusmo"
)

var (
	flagLandmarks   string
	flagGestureMode string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start a game in full-screen terminal mode.

Keyboard controls work in every game. With --landmarks the game is also
steered by hand landmark frames read as JSON lines from a file or "-"
(stdin), for example the output of a webcam hand tracker.

Examples:
  arcadegym play breakout
  arcadegym play pong --landmarks - --gesture-mode thumb
  arcadegym play tusmo --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGestureFlags(playCmd)
}

func addGestureFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLandmarks, "landmarks", "", `Landmark stream (file path or "-" for stdin); overrides gesture.yaml source`)
	cmd.Flags().StringVar(&flagGestureMode, "gesture-mode", "", "Gesture mode: translation or thumb (default thumb for pong)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcadegym list' to see available games)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Scores are optional; the game still runs.
		app.logger.Warn("score storage unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return playGame(cmdContext(cmd), gameID, store, runtimeConfig())
}

// runtimeConfig sizes the screen from the terminal, if there is one.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = app.loop.TickRate
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// playGame runs one game in the terminal, with an optional landmark
// tracker feeding it from a second goroutine.
func playGame(ctx context.Context, gameID string, store *storage.Store, cfg core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	restore, err := useLogFile()
	if err != nil {
		return err
	}
	defer restore()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if aware, ok := game.(registry.GestureAware); ok {
		tracker, cell, mode, err := openTracker(gameID)
		switch {
		case err != nil:
			app.logger.Warn("gesture input disabled, keyboard only", "err", err)
		case tracker != nil:
			aware.AttachGesture(cell, mode)
			g.Go(func() error {
				// A broken stream leaves the keyboard working.
				if err := tracker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					app.logger.Warn("gesture stream stopped", "err", err)
				}
				return nil
			})
		}
	}

	g.Go(func() error {
		defer cancel()
		return tui.Run(game, store, cfg, app.logger)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// openTracker builds a tracker from gesture.yaml and the command flags.
// It returns a nil tracker when no landmark source is configured.
func openTracker(gameID string) (*gesture.Tracker, *gesture.Cell, gesture.Mode, error) {
	gcfg, err := config.LoadGesture(config.InDir(flagConfigDir, "gesture"))
	if err != nil {
		return nil, nil, "", err
	}
	if flagLandmarks != "" {
		gcfg.Source = flagLandmarks
	}
	mode := gesture.Mode(gcfg.Mode)
	switch {
	case flagGestureMode != "":
		mode = gesture.Mode(flagGestureMode)
	case gameID == "pong":
		mode = gesture.ModeThumb
	}
	if mode != gesture.ModeTranslation && mode != gesture.ModeThumb {
		return nil, nil, "", fmt.Errorf("unknown gesture mode %q", mode)
	}
	if gcfg.Source == "" {
		return nil, nil, mode, nil
	}

	src, err := gesture.Open(gcfg.Source)
	if err != nil {
		return nil, nil, "", err
	}
	cell := &gesture.Cell{}
	app.logger.Info("gesture input enabled", "source", gcfg.Source, "mode", mode)
	return gesture.NewTracker(src, gcfg.Tracker(), cell, app.logger.WithPrefix("gesture")), cell, mode, nil
}
