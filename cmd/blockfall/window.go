package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with the keyboard.

Controls:
  Left/Right  - Move
  Up          - Rotate clockwise
  Down        - Soft drop
  Enter       - Start
  R           - Restart
  Esc/Q       - Quit

Block size and the drop trail come from the window section of the config.

Examples:
  blockfall window
  blockfall window --seed 42`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores (default: $USER)")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	cfg := loadConfig()
	player := flagPlayer
	if player == "" {
		player = defaultPlayer()
	}

	store := openStore(logger)
	s := seed()
	logger.Info("opening window", "player", player, "seed", s)

	runErr := window.Run(blockfall.NewSession(cfg, s), window.Options{
		Player: player,
		Store:  store,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}
}
