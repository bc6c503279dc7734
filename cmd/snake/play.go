package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/term"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagRows  int
	flagCols  int
	flagUI    string
	flagColor bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Snake.

UI options:
  plain - redraw the whole board on every tick (default)
  tea   - run inside a Bubble Tea program on the alternate screen

Examples:
  snake play
  snake play --rows 20 --cols 40 --seed 42
  snake play --ui tea --color`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagRows, "rows", 0, "Board height in cells (default from config: 10)")
	cmd.Flags().IntVar(&flagCols, "cols", 0, "Board width in cells (default from config: 10)")
	cmd.Flags().StringVar(&flagUI, "ui", "", "Front-end: plain or tea (default from config: plain)")
	cmd.Flags().BoolVar(&flagColor, "color", false, "Color the board")
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Grid.Rows = flagRows
	}
	if flags.Changed("cols") {
		cfg.Grid.Cols = flagCols
	}
	if flags.Changed("ui") {
		cfg.Display.UI = flagUI
	}
	if flags.Changed("color") {
		cfg.Display.Color = flagColor
	}

	return cfg, source, cfg.Validate()
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source, "grid", fmt.Sprintf("%dx%d", cfg.Grid.Rows, cfg.Grid.Cols), "ui", cfg.Display.UI)

	game, err := snake.New(cfg.Runtime(flagSeed))
	if err != nil {
		return err
	}

	var res engine.Result
	switch cfg.Display.UI {
	case config.UITea:
		res, err = tui.Run(cmd.Context(), game, tui.Options{
			Keys:   cfg.Keys,
			Fill:   cfg.Display.FillRune(),
			Color:  cfg.Display.Color,
			Logger: logger,
		})
	default:
		res, err = playPlain(cmd, game, cfg, logger)
	}
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), res)
	return nil
}

// playPlain runs the game on the raw terminal. The terminal is restored
// before it returns.
func playPlain(cmd *cobra.Command, game *snake.Game, cfg config.SnakeConfig, logger *log.Logger) (engine.Result, error) {
	input, err := term.NewRawInput(os.Stdin, cfg.Timing.InputPoll)
	if err != nil {
		return engine.Result{}, err
	}

	renderer := term.NewRenderer(cmd.OutOrStdout(), term.RendererOptions{
		Fill:       cfg.Display.FillRune(),
		Color:      cfg.Display.Color,
		HideCursor: input.IsTerminal(),
	})

	var res engine.Result
	if err = renderer.Render(game.Snapshot()); err == nil {
		session := engine.NewSession(game, input, engine.KeyMap(cfg.Keys.KeyMap()), renderer, logger)
		res, err = session.Run(cmd.Context())
	}

	return res, errors.Join(err, renderer.Close(), input.Close())
}

// printResult reports the end of a game the way the board left it.
func printResult(w io.Writer, res engine.Result) {
	if res.Reason == snake.ReasonCollision {
		fmt.Fprintln(w, "GAME OVER")
	}
	fmt.Fprintf(w, "FINAL SCORE: %d\n", res.Score)
}
