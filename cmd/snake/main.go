// snake is a real-time Snake game for the terminal.
//
// Usage:
//
//	snake                    - Play with the configured settings
//	snake play               - Same as above
//	snake config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>   - Config file (default: ~/.snake/config.yaml, then ./configs/snake.yaml)
//	--seed <value>    - Set RNG seed for reproducible games
//	--debug           - Log debug events
//	--log-file <path> - Write logs to a file instead of stderr
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDebug   bool
	flagLogFile string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a real-time terminal game. Steer the snake onto the food to
grow; every bite speeds the game up. The board wraps around at the edges
and running into your own body ends the game.

Controls (default):
  k - up      j - down
  h - left    l - right
  q - quit

Examples:
  snake
  snake play --rows 15 --cols 30
  snake play --ui tea --color
  snake config > ~/.snake/config.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. The returned closer releases the log
// file, if one was opened.
func newLogger() (*log.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "snake",
	})
	logger.SetLevel(log.WarnLevel)
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
