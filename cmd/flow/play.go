package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/games/flow"
	"github.com/vovakirdan/tui-flow/internal/games/flow/engine"
	"github.com/vovakirdan/tui-flow/internal/platform/tui"
	"github.com/vovakirdan/tui-flow/internal/registry"
	"github.com/vovakirdan/tui-flow/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [easy|hard|impossible]",
	Short: "Play a mode",
	Long: `Start playing the given mode (easy when omitted).

Controls:
  Mouse            - Press on a dot and drag to draw
  Arrows/WASD      - Move the cursor (draws while a color is selected)
  Space/Enter      - Select the dot or cell under the cursor
  R                - Restart the level
  H/?              - Show a hint
  N/Enter          - Next level (after clearing)
  Esc/B            - Leave
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot

Examples:
  flow play
  flow play hard
  flow play impossible --level 5
  flow play flow_hard
  flow play --config ./my-flow.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at")
}

// resolveGameID accepts a registered id or a mode name.
func resolveGameID(arg string) (string, error) {
	if registry.Exists(arg) {
		return arg, nil
	}
	mode, err := engine.ParseMode(arg)
	if err != nil {
		return "", err
	}
	return flow.GameID(mode), nil
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}

	gameID, err := resolveGameID(arg)
	if err != nil {
		return fmt.Errorf("%w\nRun 'flow list' to see available modes", err)
	}

	logger, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}
	if ls, ok := game.(registry.LevelSelector); ok && flagLevel > 1 {
		ls.SetStartLevel(flagLevel)
	}

	// Open clears storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open clears database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, logger, terminalConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
