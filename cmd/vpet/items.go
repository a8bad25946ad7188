package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pet/internal/config"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the items and what they do",
	Long: `Shows every button of the yard with its hotkey and stat changes,
as configured by the pet config (see --config).`,
	Args: cobra.NoArgs,
	Run:  runItems,
}

func init() {
	itemsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom pet config YAML")
}

func runItems(_ *cobra.Command, _ []string) {
	petCfg, err := config.LoadPet(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	catalog, err := petCfg.Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	items := catalog.Items()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, it := range items {
		maxIDLen = max(maxIDLen, len(it.ID))
	}

	fmt.Println("Items:")
	fmt.Println()
	fmt.Printf("  %-3s  %-5s  %-*s  %s\n", "Key", "Glyph", maxIDLen, "ID", "Effect")
	fmt.Printf("  %-3s  %-5s  %-*s  %s\n", "---", "-----", maxIDLen, "--", "------")
	for _, it := range items {
		fmt.Printf("  %-3s  %-5c  %-*s  %s\n", it.Hotkey, it.Glyph, maxIDLen, it.ID, it.Delta)
	}

	fmt.Println()
	fmt.Printf("Decay: %s every %s\n", petCfg.SessionConfig().Decay, petCfg.Decay.Interval)
}
