package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flow/internal/platform/tui"
	"github.com/vovakirdan/tui-flow/internal/registry"
	"github.com/vovakirdan/tui-flow/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to choose the start level,
Enter to play. After leaving a game you return to the menu.

Controls:
  Up/Down/j/k    - Navigate menu
  Left/Right     - Change start level
  Enter/Space    - Select
  Tab            - Open history
  Q              - Quit

Examples:
  flow menu
  flow menu --fps 60
  flow menu --db ./clears.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Open clears storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open clears database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				logger.Error("history failed", "error", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from history
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}
		if ls, ok := game.(registry.LevelSelector); ok {
			ls.SetStartLevel(menuResult.StartLevel)
		}

		// Fresh levels every time unless --seed pins them
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, logger, cfg); err != nil {
			logger.Error("game failed", "game", game.ID(), "error", err)
		}
	}
}
