package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	rc := core.DefaultConfig()
	return SnakeConfig{
		Grid: GridConfig{
			Rows: rc.Rows,
			Cols: rc.Cols,
		},
		Timing: TimingConfig{
			InitialInterval: rc.Interval,
			InputPoll:       100 * time.Millisecond,
		},
		Keys: KeysConfig{
			Up:    []string{"k", "up"},
			Down:  []string{"j", "down"},
			Left:  []string{"h", "left"},
			Right: []string{"l", "right"},
			Quit:  []string{"q", "ctrl+c"},
		},
		Display: DisplayConfig{
			UI:    UIPlain,
			Color: false,
			Fill:  "_",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
