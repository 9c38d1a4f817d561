package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/dataprof-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set DataProf configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("categorical_ratio: %.3f\n", cfg.CategoricalRatio)
		fmt.Printf("categorical_cap: %d\n", cfg.CategoricalCap)
		fmt.Printf("high_cardinality_ratio: %.3f\n", cfg.HighCardinalityRatio)
		fmt.Printf("high_cardinality_min_rows: %d\n", cfg.HighCardinalityMinRows)
		fmt.Printf("sample_size: %d\n", cfg.SampleSize)
		fmt.Printf("anomaly_ratio: %.3f\n", cfg.AnomalyRatio)
		fmt.Printf("outlier_factor: %.3f\n", cfg.OutlierFactor)
		fmt.Printf("max_rows: %d\n", cfg.MaxRows)
		fmt.Printf("null_markers: %s\n", strings.Join(cfg.NullMarkers, ", "))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "categorical_ratio":
			f, err := parseRatio(val)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			cfg.CategoricalRatio = f
		case "categorical_cap":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for %s: %v", key, val)
			}
			cfg.CategoricalCap = i
		case "high_cardinality_ratio":
			f, err := parseRatio(val)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			cfg.HighCardinalityRatio = f
		case "high_cardinality_min_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for %s: %v", key, val)
			}
			cfg.HighCardinalityMinRows = i
		case "sample_size":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for %s: %v", key, val)
			}
			cfg.SampleSize = i
		case "anomaly_ratio":
			f, err := parseRatio(val)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			cfg.AnomalyRatio = f
		case "outlier_factor":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for %s: %v", key, val)
			}
			cfg.OutlierFactor = f
		case "max_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for %s: %v", key, val)
			}
			cfg.MaxRows = i
		case "null_markers":
			cfg.NullMarkers = strings.Split(val, ",")
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func parseRatio(val string) (float64, error) {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 || f > 1 {
		return 0, fmt.Errorf("ratio %v out of range [0,1]", f)
	}
	return f, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
