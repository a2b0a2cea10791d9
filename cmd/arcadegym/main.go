// arcadegym runs paddle-and-ball games and a word game in the terminal,
// and exposes the same simulations to scripted agents.
//
// Usage:
//
//	arcadegym list                   - List available games
//	arcadegym play <game>            - Play a game in the terminal
//	arcadegym menu                   - Pick games interactively
//	arcadegym scores <game>          - Show high scores
//	arcadegym run <game>             - Run a game headless with a policy
//	arcadegym eval <game>            - Evaluate a policy over episodes
//	arcadegym episodes [game]        - List stored evaluation runs
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default from loop.yaml)
//	--seed <value>        - RNG seed for reproducible runs (0 = time)
//	--db <path>           - Score database (default ~/.arcadegym/scores.db)
//	--config-dir <dir>    - Directory holding <game>.yaml overrides
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-gym/internal/config"
	"github.com/vovakirdan/arcade-gym/internal/games/arena"
	"github.com/vovakirdan/arcade-gym/internal/games/breakout"
	"github.com/vovakirdan/arcade-gym/internal/games/pong"
	"github.com/vovakirdan/arcade-gym/internal/games/tusmo"
)

// Environment variables read after .env is loaded.
const (
	envDB       = "ARCADEGYM_DB"
	envLogLevel = "ARCADEGYM_LOG_LEVEL"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigDir  string
	flagDifficulty string
	flagLogLevel   string
)

// app is the state shared by every subcommand after flag parsing.
var app struct {
	logger *log.Logger
	level  log.Level
	loop   config.LoopConfig
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcadegym",
	Short: "Arcade games for humans and agents",
	Long: `arcadegym hosts Breakout, Pong and a word game in the terminal.

The paddle games run on a deterministic integer simulation that can also
be driven headless by scripted policies (chase, random, Lua) or by a hand
tracker that streams landmark frames as JSON lines.

Examples:
  arcadegym list
  arcadegym play breakout --difficulty easy
  arcadegym play pong --landmarks frames.jsonl
  arcadegym run pong --policy lua:bot.lua --ticks 3600
  arcadegym eval breakout --policy chase --episodes 20`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = loop config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcadegym/scores.db", "Path to the score database (env "+envDB+")")
	pf.StringVar(&flagConfigDir, "config-dir", "", "Directory with breakout/pong/tusmo/loop/gesture .yaml overrides")
	pf.StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error (env "+envLogLevel+")")

	rootCmd.AddCommand(listCmd, playCmd, menuCmd, scoresCmd, runCmd, evalCmd, episodesCmd)
}

// setup loads .env, resolves configs and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	flags := cmd.Flags()
	if v := os.Getenv(envDB); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv(envLogLevel); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	app.level = level
	app.logger = newLogger(os.Stderr, level)

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	breakout.SetDifficulty(preset)
	breakout.SetConfigPath(config.InDir(flagConfigDir, "breakout"))
	pong.SetDifficulty(preset)
	pong.SetConfigPath(config.InDir(flagConfigDir, "pong"))
	tusmo.SetConfigPath(config.InDir(flagConfigDir, "tusmo"))

	app.loop, err = config.LoadLoop(config.InDir(flagConfigDir, "loop"))
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		app.loop.TickRate = flagFPS
	}
	arena.SetLogger(app.logger)
	return nil
}
