// Package config provides YAML-based configuration loading for minetui.
package config

import (
	"fmt"

	"github.com/akovalev/minetui/internal/mines"
)

// Config is the full minetui configuration.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Theme ThemeConfig `yaml:"theme"`
}

// BoardConfig defines the board shape and mine count.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"` // 0 = one sixth of the board area
}

// ThemeConfig overrides the cell glyphs. Empty entries keep the defaults.
type ThemeConfig struct {
	Covered string `yaml:"covered"`
	Flag    string `yaml:"flag"`
	Mine    string `yaml:"mine"`
}

// Params converts the board section into engine parameters, applying the
// derived mine count and validating against the engine's constraints.
func (c Config) Params() (mines.Params, error) {
	p, err := mines.Params{
		Width:  c.Board.Width,
		Height: c.Board.Height,
		Mines:  c.Board.Mines,
	}.Normalize()
	if err != nil {
		return p, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

// GameTheme converts the theme section into renderer glyphs. Entries left
// empty resolve to the session defaults; only the first rune of each entry
// is used.
func (c Config) GameTheme() mines.Theme {
	var t mines.Theme
	t.Covered = firstRune(c.Theme.Covered)
	t.Flag = firstRune(c.Theme.Flag)
	t.Mine = firstRune(c.Theme.Mine)
	return t
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
