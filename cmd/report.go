package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataprof-cli/internal/profile"
	"github.com/KaramelBytes/dataprof-cli/internal/report"
	"github.com/KaramelBytes/dataprof-cli/internal/utils"
)

var (
	repOutputPath string
	repName       string
)

var reportCmd = &cobra.Command{
	Use:   "report <profile.json>",
	Short: "Render a saved profile as a readable report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read profile: %w", err)
		}
		var p profile.DatasetProfile
		if err := json.Unmarshal(b, &p); err != nil {
			return fmt.Errorf("decode profile: %w", err)
		}

		name := repName
		if name == "" {
			name = strings.TrimSuffix(args[0], ".json")
		}
		md := report.Markdown(&p, name)

		if repOutputPath != "" {
			if err := utils.SafeWriteFile(repOutputPath, []byte(md)); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote report to %s\n", repOutputPath)
			return nil
		}
		fmt.Println(md)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&repOutputPath, "output", "o", "", "optional path to write the report")
	reportCmd.Flags().StringVar(&repName, "name", "", "dataset name to show in the report header")
}
