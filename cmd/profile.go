package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataprof-cli/internal/loader"
	"github.com/KaramelBytes/dataprof-cli/internal/profile"
	"github.com/KaramelBytes/dataprof-cli/internal/report"
	"github.com/KaramelBytes/dataprof-cli/internal/utils"
)

var (
	profOutputPath   string
	profFormat       string
	profDelimiter    string
	profSheetName    string
	profSheetIndex   int
	profMaxRows      int
	profSampleSize   int
	profHighCardThr  float64
	profAnomalyRatio float64
	profOutlierFact  float64
)

var profileCmd = &cobra.Command{
	Use:   "profile <file>",
	Short: "Profile a CSV/TSV, XLSX, or Parquet dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		lopt := loaderOptions()
		if profDelimiter != "" {
			switch profDelimiter {
			case ",":
				lopt.Delimiter = ','
			case "\t", "tab":
				lopt.Delimiter = '\t'
			case ";":
				lopt.Delimiter = ';'
			default:
				return fmt.Errorf("unsupported --delimiter: %s", profDelimiter)
			}
		}
		lopt.SheetName = profSheetName
		if profSheetIndex > 0 {
			lopt.SheetIndex = profSheetIndex
		}
		if cmd.Flags().Changed("max-rows") {
			lopt.MaxRows = profMaxRows
		}

		popt := engineOptions()
		if cmd.Flags().Changed("sample-size") {
			popt.SampleSize = profSampleSize
		}
		if cmd.Flags().Changed("high-card-threshold") {
			popt.HighCardinalityRatio = profHighCardThr
		}
		if cmd.Flags().Changed("anomaly-ratio") {
			popt.AnomalyRatio = profAnomalyRatio
		}
		if cmd.Flags().Changed("outlier-factor") {
			popt.OutlierFactor = profOutlierFact
		}

		log.Debugf("loading %s", path)
		tbl, err := loader.Load(path, lopt)
		if err != nil {
			return err
		}
		p, err := profile.Profile(tbl, popt)
		if err != nil {
			return fmt.Errorf("profile %s: %w", filepath.Base(path), err)
		}

		var out []byte
		switch strings.ToLower(profFormat) {
		case "json":
			out, err = utils.PrettyJSON(p)
			if err != nil {
				return err
			}
		case "markdown", "md":
			out = []byte(report.Markdown(p, filepath.Base(path)))
		case "both":
			// JSON goes to the output file, markdown to stdout.
			if profOutputPath == "" {
				return fmt.Errorf("--format both requires --output for the json profile")
			}
			jb, err := utils.PrettyJSON(p)
			if err != nil {
				return err
			}
			if err := utils.SafeWriteFile(profOutputPath, jb); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote profile to %s\n", profOutputPath)
			fmt.Println(report.Markdown(p, filepath.Base(path)))
			return nil
		default:
			return fmt.Errorf("unsupported --format: %s (use json|markdown|both)", profFormat)
		}

		if profOutputPath != "" {
			if err := utils.SafeWriteFile(profOutputPath, out); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote profile to %s\n", profOutputPath)
			return nil
		}
		fmt.Println(string(out))
		return nil
	},
}

// loaderOptions builds loader options from the loaded config.
func loaderOptions() loader.Options {
	opt := loader.DefaultOptions()
	if cfg == nil {
		return opt
	}
	opt.MaxRows = cfg.MaxRows
	if len(cfg.NullMarkers) > 0 {
		opt.NullMarkers = cfg.NullMarkers
	}
	return opt
}

// engineOptions builds engine options from the loaded config.
func engineOptions() profile.Options {
	opt := profile.DefaultOptions()
	if cfg == nil {
		return opt
	}
	if cfg.CategoricalRatio > 0 {
		opt.CategoricalRatio = cfg.CategoricalRatio
	}
	if cfg.CategoricalCap > 0 {
		opt.CategoricalCap = cfg.CategoricalCap
	}
	if cfg.HighCardinalityRatio > 0 {
		opt.HighCardinalityRatio = cfg.HighCardinalityRatio
	}
	if cfg.HighCardinalityMinRows > 0 {
		opt.HighCardinalityMinRows = cfg.HighCardinalityMinRows
	}
	if cfg.SampleSize > 0 {
		opt.SampleSize = cfg.SampleSize
	}
	if cfg.AnomalyRatio > 0 {
		opt.AnomalyRatio = cfg.AnomalyRatio
	}
	if cfg.OutlierFactor > 0 {
		opt.OutlierFactor = cfg.OutlierFactor
	}
	return opt
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVarP(&profOutputPath, "output", "o", "", "optional path to write the profile")
	profileCmd.Flags().StringVarP(&profFormat, "format", "f", "markdown", "output format: json|markdown|both")
	profileCmd.Flags().StringVar(&profDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	profileCmd.Flags().StringVar(&profSheetName, "sheet-name", "", "XLSX: sheet name to profile")
	profileCmd.Flags().IntVar(&profSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	profileCmd.Flags().IntVar(&profMaxRows, "max-rows", 0, "maximum rows to load (0 = unlimited)")
	profileCmd.Flags().IntVar(&profSampleSize, "sample-size", 10, "number of leading non-null sample values per column")
	profileCmd.Flags().Float64Var(&profHighCardThr, "high-card-threshold", 0.9, "distinct/rows ratio above which a column is high-cardinality")
	profileCmd.Flags().Float64Var(&profAnomalyRatio, "anomaly-ratio", 0.8, "fraction of sampled values that must parse as numeric to flag a column")
	profileCmd.Flags().Float64Var(&profOutlierFact, "outlier-factor", 1.5, "IQR multiplier for the outlier fence")
}
