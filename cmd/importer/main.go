package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "importer",
	Short: "Seed and inspect the places catalog",
	Long: `importer loads attraction catalogs into the PostgreSQL catalog table
and runs catalog queries offline.

Examples:
  importer catalog --file catalog.yaml
  importer raw --file foursquare.json --featured 4adcda10f964a520af3521e3
  importer query --file catalog.yaml --q rome --sort rating`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "configs", "directory holding app.yaml")
	rootCmd.AddCommand(catalogCmd, rawCmd, queryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
