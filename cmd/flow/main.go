// flow is a terminal puzzle: connect matching colors on a grid without crossing paths.
//
// Usage:
//
//	flow list                  - List available modes
//	flow play [mode]           - Play a mode (easy, hard, impossible)
//	flow menu                  - Start menu to pick a mode interactively
//	flow serve                 - Start SSH server for remote play
//	flow history [mode]        - Show cleared levels for a mode
//	flow generate              - Print a generated level
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible levels
//	--db <path>         - Set database path (default: ~/.tui-flow/clears.db)
//	--config <path>     - Use a custom flow.yaml
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file while the TUI is running
//	--theme <name>      - default or classic
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flow/internal/games/flow"
	"github.com/vovakirdan/tui-flow/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagTheme    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flow",
	Short: "Flow - connect the colors in your terminal",
	Long: `Flow is a terminal puzzle. Every level is a square grid with pairs of
colored dots. Draw a path between the two dots of each color. Paths may not
cross, and a level is cleared when every pair is connected.

Available commands:
  list      - Show all modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  history   - View cleared levels
  generate  - Print a generated level

Examples:
  flow list
  flow play
  flow play hard --level 10
  flow menu
  flow serve --ssh :2222
  flow history impossible
  flow generate --mode impossible --level 8 --seed 42`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		theme, ok := tui.ThemeByName(flagTheme)
		if !ok {
			return fmt.Errorf("unknown theme %q (want default or classic)", flagTheme)
		}
		tui.SetFlowTheme(theme)
		flow.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-flow/clears.db", "Path to clears database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom flow config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive commands (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Color theme: default, classic")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(generateCmd)
}

// newLogger builds a logger writing to w at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// sessionLogger returns the logger used while a TUI owns the terminal.
// Without --log-file events are discarded. The returned closer is never nil.
func sessionLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard, "flow")
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "flow")
	if err != nil {
		f.Close()
		return nil, func() {}, err
	}
	return logger, func() { f.Close() }, nil
}
