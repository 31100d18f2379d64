package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snek/internal/config"
	"github.com/vovakirdan/snek/internal/games/snake"
	"github.com/vovakirdan/snek/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board presets",
	Long:  `Shows every registered board preset and its size.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	presets := registry.List()
	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return nil
	}

	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Println("Available presets:")
	fmt.Println()
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Board", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, info := range presets {
		board := "?"
		if p, ok := snake.PresetByID(info.ID); ok {
			cfg := p.Apply(loaded)
			board = fmt.Sprintf("%dx%d", cfg.Board.Rows, cfg.Board.Cols)
		}
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, info.ID, board, info.Title)
	}

	fmt.Println()
	fmt.Println("Run 'snek play <id>' to play.")
	return nil
}
