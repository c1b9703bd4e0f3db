package config

import (
	_ "embed"
)

//go:embed defaults/minetui.yaml
var defaultConfigYAML []byte

// Default returns the default configuration: the classic 10x10 board with
// the derived mine count.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 10,
			Mines:  0,
		},
	}
}
