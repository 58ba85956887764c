package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right  - Move
  Up          - Rotate clockwise
  Down        - Soft drop
  Enter       - Start
  R           - Restart
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Logs are discarded unless --log-file is set, because the game owns the screen.

Examples:
  blockfall play
  blockfall play --seed 42 --player ada
  blockfall play --config ./fast.yaml --log-file blockfall.log --debug`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores (default: $USER)")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	cfg := loadConfig()

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	rt := core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: seed()}
	player := flagPlayer
	if player == "" {
		player = defaultPlayer()
	}

	store := openStore(logger)
	logger.Info("starting terminal game", "player", player, "seed", rt.Seed)

	runErr := tui.Run(blockfall.NewSession(cfg, rt.Seed), tui.Options{
		Runtime: rt,
		Player:  player,
		Trail:   cfg.Window.Trail,
		Store:   store,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
