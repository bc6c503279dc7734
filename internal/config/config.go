// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// UI front-end names.
const (
	UIPlain = "plain"
	UITea   = "tea"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Keys    KeysConfig    `yaml:"keys"`
	Display DisplayConfig `yaml:"display"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines pacing parameters.
type TimingConfig struct {
	InitialInterval time.Duration `yaml:"initial_interval"`
	InputPoll       time.Duration `yaml:"input_poll"`
}

// KeysConfig lists the keys bound to each action. Single characters apply to
// every front-end; named keys such as "up" or "ctrl+c" only to the tea UI.
type KeysConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Quit  []string `yaml:"quit"`
}

// DisplayConfig defines how the board is drawn.
type DisplayConfig struct {
	UI    string `yaml:"ui"`
	Color bool   `yaml:"color"`
	Fill  string `yaml:"fill"`
}

// Bindings returns the configured keys grouped by action.
func (k KeysConfig) Bindings() map[core.Action][]string {
	return map[core.Action][]string{
		core.ActionUp:    k.Up,
		core.ActionDown:  k.Down,
		core.ActionLeft:  k.Left,
		core.ActionRight: k.Right,
		core.ActionQuit:  k.Quit,
	}
}

// KeyMap returns the bindings a raw terminal can deliver as a rune lookup
// table: single characters and ctrl+<letter> control codes.
func (k KeysConfig) KeyMap() map[rune]core.Action {
	m := make(map[rune]core.Action)
	for action, keys := range k.Bindings() {
		for _, key := range keys {
			if r, ok := rawRune(key); ok {
				m[r] = action
			}
		}
	}
	return m
}

// rawRune returns the rune a raw-mode terminal reads for key. Raw mode turns
// off signal generation, so ctrl+c arrives as 0x03 like any other key.
func rawRune(key string) (rune, bool) {
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		return r, true
	}
	if letter, ok := strings.CutPrefix(key, "ctrl+"); ok && len(letter) == 1 {
		if c := letter[0]; c >= 'a' && c <= 'z' {
			return rune(c-'a') + 1, true
		}
	}
	return 0, false
}

// FillRune returns the bottom-row fill character.
func (d DisplayConfig) FillRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Fill)
	return r
}

// Runtime converts the config into game initialization parameters.
func (c SnakeConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Rows:     c.Grid.Rows,
		Cols:     c.Grid.Cols,
		Interval: c.Timing.InitialInterval,
		Seed:     seed,
	}
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Rows, c.Grid.Cols))
	} else if c.Grid.Rows*c.Grid.Cols < 2 {
		errs = append(errs, errors.New("grid needs at least two cells"))
	}
	if c.Timing.InitialInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.initial_interval must be positive, got %s", c.Timing.InitialInterval))
	}
	if c.Timing.InputPoll <= 0 {
		errs = append(errs, fmt.Errorf("timing.input_poll must be positive, got %s", c.Timing.InputPoll))
	}
	if utf8.RuneCountInString(c.Display.Fill) != 1 {
		errs = append(errs, fmt.Errorf("display.fill must be a single character, got %q", c.Display.Fill))
	}
	if c.Display.UI != UIPlain && c.Display.UI != UITea {
		errs = append(errs, fmt.Errorf("display.ui must be %q or %q, got %q", UIPlain, UITea, c.Display.UI))
	}

	seen := make(map[string]core.Action)
	for _, action := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionQuit} {
		keys := c.Keys.Bindings()[action]
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("keys: no key bound to %s", action))
		}
		for _, key := range keys {
			if prev, dup := seen[key]; dup {
				errs = append(errs, fmt.Errorf("keys: %q bound to both %s and %s", key, prev, action))
				continue
			}
			seen[key] = action
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c SnakeConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
