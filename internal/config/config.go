// Package config provides configuration loading and validation.
package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	PartyA    PartyConfig     `mapstructure:"party_a"`
	PartyB    PartyConfig     `mapstructure:"party_b"`
	Swap      SwapConfig      `mapstructure:"swap"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
	HealthPort  int    `mapstructure:"health_port"`
}

// PartyConfig holds one counterparty's market quotes and desired exposure.
// Rates are decimal fractions (0.1045 = 10.45%); the floating rate is a
// spread over the benchmark index.
type PartyConfig struct {
	Name           string  `mapstructure:"name"`
	FixedRate      float64 `mapstructure:"fixed_rate"`
	FloatingSpread float64 `mapstructure:"floating_spread"`
	Wants          string  `mapstructure:"wants"` // "fixed" or "floating"
}

// FixedRateDecimal returns the fixed rate as decimal.Decimal.
func (c *PartyConfig) FixedRateDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.FixedRate)
}

// FloatingSpreadDecimal returns the floating spread as decimal.Decimal.
func (c *PartyConfig) FloatingSpreadDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.FloatingSpread)
}

// SwapConfig holds the swap construction settings. AllocationPolicy is
// "equal" or "negotiated"; RatioA only matters for the negotiated policy.
// TermPeriods is informational, the gain calculation is single-period.
type SwapConfig struct {
	Notional            float64 `mapstructure:"notional"`
	TermPeriods         int     `mapstructure:"term_periods"`
	AllocationPolicy    string  `mapstructure:"allocation_policy"`
	RatioA              float64 `mapstructure:"ratio_a"`
	IntermediaryFeeRate float64 `mapstructure:"intermediary_fee_rate"`
}

// NotionalDecimal returns the notional as decimal.Decimal.
func (c *SwapConfig) NotionalDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.Notional)
}

// RatioADecimal returns the negotiated ratio as decimal.Decimal.
func (c *SwapConfig) RatioADecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.RatioA)
}

// IntermediaryFeeRateDecimal returns the fee rate as decimal.Decimal.
func (c *SwapConfig) IntermediaryFeeRateDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.IntermediaryFeeRate)
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("SWAP")
	v.AutomaticEnv()

	bindEnvVars(v)
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	// App
	v.BindEnv("app.name", "SWAP_APP_NAME", "SERVICE_NAME")
	v.BindEnv("app.environment", "SWAP_ENVIRONMENT", "ENVIRONMENT")
	v.BindEnv("app.log_level", "SWAP_LOG_LEVEL", "LOG_LEVEL")

	// Party quotes
	v.BindEnv("party_a.fixed_rate", "SWAP_PARTY_A_FIXED_RATE")
	v.BindEnv("party_a.floating_spread", "SWAP_PARTY_A_FLOATING_SPREAD")
	v.BindEnv("party_a.wants", "SWAP_PARTY_A_WANTS")
	v.BindEnv("party_b.fixed_rate", "SWAP_PARTY_B_FIXED_RATE")
	v.BindEnv("party_b.floating_spread", "SWAP_PARTY_B_FLOATING_SPREAD")
	v.BindEnv("party_b.wants", "SWAP_PARTY_B_WANTS")

	// Swap
	v.BindEnv("swap.notional", "SWAP_NOTIONAL")
	v.BindEnv("swap.allocation_policy", "SWAP_ALLOCATION_POLICY")
	v.BindEnv("swap.ratio_a", "SWAP_RATIO_A")
	v.BindEnv("swap.intermediary_fee_rate", "SWAP_INTERMEDIARY_FEE_RATE")

	// Telemetry
	v.BindEnv("telemetry.enabled", "SWAP_OTEL_ENABLED", "OTEL_ENABLED")
	v.BindEnv("telemetry.service_name", "SWAP_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.otlp_endpoint", "SWAP_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "swap-analyzer")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.health_port", 8081)

	// Default quotes: the classic fixed-for-floating teaching example where
	// party B is cheaper in both markets but the relative edges differ.
	v.SetDefault("party_a.name", "Party A")
	v.SetDefault("party_a.fixed_rate", 0.1045)
	v.SetDefault("party_a.floating_spread", 0.0075)
	v.SetDefault("party_a.wants", "fixed")

	v.SetDefault("party_b.name", "Party B")
	v.SetDefault("party_b.fixed_rate", 0.0965)
	v.SetDefault("party_b.floating_spread", 0.0025)
	v.SetDefault("party_b.wants", "floating")

	// Swap defaults
	v.SetDefault("swap.notional", 1_000_000.0)
	v.SetDefault("swap.term_periods", 10)
	v.SetDefault("swap.allocation_policy", "equal")
	v.SetDefault("swap.ratio_a", 0.5)
	v.SetDefault("swap.intermediary_fee_rate", 0.0)

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "swap-analyzer")
	v.SetDefault("telemetry.prometheus_port", 9090)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	for _, party := range []*PartyConfig{&c.PartyA, &c.PartyB} {
		if party.FixedRate <= 0 {
			return fmt.Errorf("%s: fixed_rate must be positive", party.Name)
		}
		if party.FloatingSpread <= 0 {
			return fmt.Errorf("%s: floating_spread must be positive", party.Name)
		}
		if party.Wants != "fixed" && party.Wants != "floating" {
			return fmt.Errorf("%s: wants must be \"fixed\" or \"floating\", got %q", party.Name, party.Wants)
		}
	}
	if c.Swap.Notional <= 0 {
		return fmt.Errorf("swap.notional must be positive")
	}
	switch c.Swap.AllocationPolicy {
	case "equal", "negotiated":
	default:
		return fmt.Errorf("swap.allocation_policy must be \"equal\" or \"negotiated\", got %q", c.Swap.AllocationPolicy)
	}
	if c.Swap.RatioA < 0 || c.Swap.RatioA > 1 {
		return fmt.Errorf("swap.ratio_a must be within [0,1]")
	}
	if c.Swap.IntermediaryFeeRate < 0 || c.Swap.IntermediaryFeeRate > 1 {
		return fmt.Errorf("swap.intermediary_fee_rate must be within [0,1]")
	}
	return nil
}
