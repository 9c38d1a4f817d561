package cmd

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/dataprof-cli/internal/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "dataprof",
	Short: "DataProf CLI: audit the quality of a tabular dataset",
	Long:  `DataProf is a CLI tool that profiles CSV, XLSX, and Parquet datasets for missing values, duplicate rows, outliers, cardinality, and type anomalies, producing a structured quality profile and a readable report.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.dataprof/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

func loadConfig() {
	log.SetHandler(cli.Default)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}
