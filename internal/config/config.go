package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/hannawannana/simulated-bond-index-construction/internal/logging"
)

const dateFormat = "2006-01-02"

// Config materialises application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Logging  logging.Config `mapstructure:"logging"`
	FRED     FREDConfig     `mapstructure:"fred"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Output   OutputConfig   `mapstructure:"output"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// FREDConfig covers FRED API access.
type FREDConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	UserAgent      string        `mapstructure:"user_agent"`
}

// SeriesIDs names the FRED series per curve tenor plus the benchmark.
type SeriesIDs struct {
	OneYear   string `mapstructure:"one_year"`
	FiveYear  string `mapstructure:"five_year"`
	TenYear   string `mapstructure:"ten_year"`
	Benchmark string `mapstructure:"benchmark"`
}

// WeightsConfig is a fixed-tenor target allocation. Weights must be
// non-negative; summing to 1 is expected but not enforced.
type WeightsConfig struct {
	OneYear  float64 `mapstructure:"one_year"`
	FiveYear float64 `mapstructure:"five_year"`
	TenYear  float64 `mapstructure:"ten_year"`
}

// StrategyConfig names one weight mix.
type StrategyConfig struct {
	Name    string        `mapstructure:"name"`
	Weights WeightsConfig `mapstructure:"weights"`
}

// AnalysisConfig holds the simulation window and model parameters.
type AnalysisConfig struct {
	StartDate           string         `mapstructure:"start_date"`
	EndDate             string         `mapstructure:"end_date"`
	InitialCapital      float64        `mapstructure:"initial_capital"`
	TransactionCostRate float64        `mapstructure:"transaction_cost_rate"`
	Series              SeriesIDs      `mapstructure:"series"`
	Original            StrategyConfig `mapstructure:"original"`
	Adjusted            StrategyConfig `mapstructure:"adjusted"`
	BenchmarkName       string         `mapstructure:"benchmark_name"`
}

// OutputConfig sets report destinations and chart dimensions.
type OutputConfig struct {
	CSVPath     string `mapstructure:"csv_path"`
	PNGPath     string `mapstructure:"png_path"`
	ChartTitle  string `mapstructure:"chart_title"`
	ChartWidth  int    `mapstructure:"chart_width"`
	ChartHeight int    `mapstructure:"chart_height"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BONDINDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "bondindex")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("fred.base_url", "https://api.stlouisfed.org")
	v.SetDefault("fred.request_timeout", "15s")
	v.SetDefault("fred.user_agent", "bondindex/1.0")

	v.SetDefault("analysis.start_date", "2018-01-01")
	v.SetDefault("analysis.end_date", "2023-12-31")
	v.SetDefault("analysis.initial_capital", 1000.0)
	v.SetDefault("analysis.transaction_cost_rate", 0.001)

	v.SetDefault("analysis.series.one_year", "GS1")
	v.SetDefault("analysis.series.five_year", "GS5")
	v.SetDefault("analysis.series.ten_year", "GS10")
	v.SetDefault("analysis.series.benchmark", "SP500")
	v.SetDefault("analysis.benchmark_name", "S&P 500 Index")

	v.SetDefault("analysis.original.name", "Bond Index (Original)")
	v.SetDefault("analysis.original.weights.one_year", 0.3)
	v.SetDefault("analysis.original.weights.five_year", 0.4)
	v.SetDefault("analysis.original.weights.ten_year", 0.3)

	v.SetDefault("analysis.adjusted.name", "Bond Index (Adjusted)")
	v.SetDefault("analysis.adjusted.weights.one_year", 0.5)
	v.SetDefault("analysis.adjusted.weights.five_year", 0.3)
	v.SetDefault("analysis.adjusted.weights.ten_year", 0.2)

	v.SetDefault("output.csv_path", "bond_vs_sp500_data.csv")
	v.SetDefault("output.png_path", "bond_vs_sp500.png")
	v.SetDefault("output.chart_title", "Bond Index Strategies vs S&P 500 (2018-2023)")
	v.SetDefault("output.chart_width", 1100)
	v.SetDefault("output.chart_height", 600)
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if c.Analysis.InitialCapital <= 0 {
		return fmt.Errorf("analysis.initial_capital must be greater than zero")
	}
	if c.Analysis.TransactionCostRate < 0 {
		return fmt.Errorf("analysis.transaction_cost_rate cannot be negative")
	}
	if _, _, err := c.Analysis.Window(); err != nil {
		return err
	}
	for _, strat := range []StrategyConfig{c.Analysis.Original, c.Analysis.Adjusted} {
		w := strat.Weights
		if w.OneYear < 0 || w.FiveYear < 0 || w.TenYear < 0 {
			return fmt.Errorf("strategy %q weights cannot be negative", strat.Name)
		}
	}
	if c.Output.CSVPath == "" && c.Output.PNGPath == "" {
		return fmt.Errorf("at least one of output.csv_path or output.png_path must be set")
	}
	return nil
}

// Window parses the analysis date range.
func (a AnalysisConfig) Window() (time.Time, time.Time, error) {
	start, err := time.Parse(dateFormat, a.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid analysis.start_date: %w", err)
	}
	end, err := time.Parse(dateFormat, a.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid analysis.end_date: %w", err)
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("analysis.start_date must be before analysis.end_date")
	}
	return start, end, nil
}
