package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/view-imaging/measlist/internal/entities"
)

const (
	DefaultOutputFormat = "csv"
	DefaultLogLevel     = "info"
)

type (
	Config struct {
		Data
		Output
		Logging
	}

	Data struct {
		Dir            string // Root directory all chosen raw files must live under
		DefaultRowPath string // Optional YAML file with the default-row column template
	}
	Output struct {
		Path   string
		Format string // "csv" or "xlsx"
	}
	Logging struct {
		Level string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("data_dir", "")
	v.SetDefault("default_row_path", "")
	v.SetDefault("output_path", "measurements.lst")
	v.SetDefault("output_format", DefaultOutputFormat)
	v.SetDefault("log_level", DefaultLogLevel)

	return &Config{
		Data: Data{
			Dir:            v.GetString("DATA_DIR"),
			DefaultRowPath: v.GetString("DEFAULT_ROW_PATH"),
		},
		Output: Output{
			Path:   v.GetString("OUTPUT_PATH"),
			Format: v.GetString("OUTPUT_FORMAT"),
		},
		Logging: Logging{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
}

// LoadDefaultValues reads the default-row column template from a YAML
// file of ordered {name, value} pairs. An empty path falls back to the
// built-in schema defaults.
func LoadDefaultValues(path string) (entities.DefaultValues, error) {
	if path == "" {
		return entities.StandardDefaults(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return entities.DefaultValues{}, fmt.Errorf("reading default row template: %w", err)
	}

	var columns []entities.ColumnDefault
	if err := v.UnmarshalKey("columns", &columns); err != nil {
		return entities.DefaultValues{}, fmt.Errorf("parsing default row template: %w", err)
	}
	if len(columns) == 0 {
		return entities.DefaultValues{}, fmt.Errorf("default row template %s declares no columns", path)
	}
	return entities.NewDefaultValues(columns), nil
}
