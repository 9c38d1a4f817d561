package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	CategoricalRatio       float64  `mapstructure:"categorical_ratio" yaml:"categorical_ratio"`
	CategoricalCap         int      `mapstructure:"categorical_cap" yaml:"categorical_cap"`
	HighCardinalityRatio   float64  `mapstructure:"high_cardinality_ratio" yaml:"high_cardinality_ratio"`
	HighCardinalityMinRows int      `mapstructure:"high_cardinality_min_rows" yaml:"high_cardinality_min_rows"`
	SampleSize             int      `mapstructure:"sample_size" yaml:"sample_size"`
	AnomalyRatio           float64  `mapstructure:"anomaly_ratio" yaml:"anomaly_ratio"`
	OutlierFactor          float64  `mapstructure:"outlier_factor" yaml:"outlier_factor"`
	MaxRows                int      `mapstructure:"max_rows" yaml:"max_rows"`
	NullMarkers            []string `mapstructure:"null_markers" yaml:"null_markers"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.dataprof/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataprof")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATAPROF")
	v.AutomaticEnv()

	// Documented engine defaults
	v.SetDefault("categorical_ratio", 0.5)
	v.SetDefault("categorical_cap", 20)
	v.SetDefault("high_cardinality_ratio", 0.9)
	v.SetDefault("high_cardinality_min_rows", 20)
	v.SetDefault("sample_size", 10)
	v.SetDefault("anomaly_ratio", 0.8)
	v.SetDefault("outlier_factor", 1.5)
	v.SetDefault("max_rows", 0)
	v.SetDefault("null_markers", []string{"na", "n/a", "nan", "null", "none"})

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataprof")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
