package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-gym/internal/platform/tui"
	"github.com/vovakirdan/arcade-gym/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game interactively",
	Long: `Shows the game picker with best scores. Choosing a game plays it and
returns to the picker afterwards. Tab opens the scoreboard.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGestureFlags(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		app.logger.Warn("score storage unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	for {
		cfg := runtimeConfig()
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		switch {
		case res.Quit:
			return nil
		case res.Scoreboard:
			if store == nil {
				continue
			}
			back, err := tui.RunScoreboard(store, tui.ViewScores, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
		case res.GameID != "":
			if err := playGame(cmdContext(cmd), res.GameID, store, res.Config); err != nil {
				return err
			}
		}
	}
}
