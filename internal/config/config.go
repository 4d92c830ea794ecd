package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"cdf-compare/internal/logging"
)

// Config materialises application configuration.
type Config struct {
	App     AppConfig      `mapstructure:"app"`
	Logging logging.Config `mapstructure:"logging"`
	Fetch   FetchConfig    `mapstructure:"fetch"`
	Extract ExtractConfig  `mapstructure:"extract"`
	Compare CompareConfig  `mapstructure:"compare"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// FetchConfig covers data-provider access.
type FetchConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	ScratchDir     string        `mapstructure:"scratch_dir"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	UserAgent      string        `mapstructure:"user_agent"`
}

// ExtractConfig selects what is read out of the downloaded file.
type ExtractConfig struct {
	Variable     string `mapstructure:"variable"`
	TimeVariable string `mapstructure:"time_variable"`
}

// CompareConfig governs equivalence checking and chart geometry.
type CompareConfig struct {
	ValueTolerance float64       `mapstructure:"value_tolerance"`
	TimeTolerance  time.Duration `mapstructure:"time_tolerance"`
	PanelWidth     int           `mapstructure:"panel_width"`
	PanelHeight    int           `mapstructure:"panel_height"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CDFCOMPARE")
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
	v.SetDefault("app.name", "cdfcompare")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("fetch.base_url", "https://spdf.gsfc.nasa.gov/pub/data")
	v.SetDefault("fetch.scratch_dir", "")
	v.SetDefault("fetch.request_timeout", "60s")
	v.SetDefault("fetch.user_agent", "cdf-compare/1.0")

	v.SetDefault("extract.variable", "DST1800")
	v.SetDefault("extract.time_variable", "Epoch")

	v.SetDefault("compare.value_tolerance", 1e-6)
	v.SetDefault("compare.time_tolerance", "1m")
	v.SetDefault("compare.panel_width", 1280)
	v.SetDefault("compare.panel_height", 400)
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
	if c.Fetch.BaseURL == "" {
		return fmt.Errorf("fetch.base_url 必须配置")
	}
	if c.Extract.Variable == "" {
		return fmt.Errorf("extract.variable 必须配置")
	}
	if c.Extract.TimeVariable == "" {
		return fmt.Errorf("extract.time_variable 必须配置")
	}
	if c.Compare.ValueTolerance <= 0 {
		return fmt.Errorf("compare.value_tolerance must be greater than zero")
	}
	if c.Compare.TimeTolerance <= 0 {
		return fmt.Errorf("compare.time_tolerance must be greater than zero")
	}
	if c.Compare.PanelWidth <= 0 || c.Compare.PanelHeight <= 0 {
		return fmt.Errorf("compare.panel_width and compare.panel_height must be greater than zero")
	}
	return nil
}
