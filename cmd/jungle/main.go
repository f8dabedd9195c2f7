// jungle is a terminal side-scroller: steer the lion to eat meat and
// dodge rocks.
//
// Usage:
//
//	jungle play [game]      - Play in the terminal (default: jungle)
//	jungle sim [game]       - Run headless and print the result
//	jungle list             - List available games
//	jungle config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Use a specific config YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jungle-run/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/jungle-run/internal/games/jungle"
)

const defaultGame = "jungle"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jungle",
	Short: "Jungle Run - a side-scrolling arcade game for the terminal",
	Long: `Jungle Run puts you in charge of a hungry lion. Move up and down to
eat the meat flying in from the right and avoid the rocks.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless simulation
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  jungle play
  jungle play --seed 42 --fps 30
  jungle sim --ticks 5000 --policy random --seed 7
  jungle config > ~/.jungle/configs/jungle.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "jungle",
		Level:           level,
	})
	return logger, closeFn, nil
}

// runtimeConfig builds the host settings from --fps and --seed. A zero
// seed is resolved here so play and sim can log the seed they ran with.
func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}.WithResolvedSeed(time.Now())
}

// gameID returns the game named on the command line or the default.
func gameID(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}
