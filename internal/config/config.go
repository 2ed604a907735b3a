// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variable overrides, e.g. LOANCALC_CURRENCY_SYMBOL.
const EnvPrefix = "LOANCALC"

// Configuration holds all configuration for loan-calculator.
type Configuration struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Currency CurrencyConfig `yaml:"currency,omitempty"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// CurrencyConfig holds the currency symbol and decimal places used for amounts.
type CurrencyConfig struct {
	Symbol        string `yaml:"symbol,omitempty"`
	DecimalPlaces int    `yaml:"decimalPlaces,omitempty"`
}

// DefaultsConfig holds the amount and term used when none is supplied.
type DefaultsConfig struct {
	Amount float64 `yaml:"amount,omitempty"`
	Years  float64 `yaml:"years,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

// Default returns the configuration used when no file is loaded.
func Default() *Configuration {
	conf, err := decode(newViper())
	if err != nil {
		// Only reachable if the defaults themselves cannot be decoded.
		panic(fmt.Sprintf("invalid default configuration: %v", err))
	}
	return conf
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
	v.SetDefault("currency.symbol", constants.DefaultCurrencySymbol)
	v.SetDefault("currency.decimalPlaces", constants.DefaultDecimalPlaces)
	v.SetDefault("defaults.amount", constants.AmountDefault)
	v.SetDefault("defaults.years", constants.YearsDefault)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ValidateConfiguration checks the configured values against the ranges the
// UI layer supplies and returns warnings. Out of range values are still used.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Currency.Symbol == "" {
		warnings = append(warnings, "currency symbol is empty; amounts will be shown without a symbol")
	}
	if c.Currency.DecimalPlaces < 0 || c.Currency.DecimalPlaces > constants.MaxDecimalPlaces {
		warnings = append(warnings, fmt.Sprintf("currency decimal places %d outside [0, %d] will be clamped",
			c.Currency.DecimalPlaces, constants.MaxDecimalPlaces))
	}

	warnings = append(warnings, checkSliderValue("amount", c.Defaults.Amount,
		constants.AmountMin, constants.AmountMax, constants.AmountStep)...)
	warnings = append(warnings, checkSliderValue("years", c.Defaults.Years,
		constants.YearsMin, constants.YearsMax, constants.YearsStep)...)

	return warnings
}

func checkSliderValue(name string, value, min, max, step float64) []string {
	var warnings []string
	if value < min || value > max {
		warnings = append(warnings, fmt.Sprintf("default %s %v is outside the slider range [%v, %v]",
			name, value, min, max))
	}
	if steps := (value - min) / step; math.Abs(steps-math.Round(steps)) > 1e-9 {
		warnings = append(warnings, fmt.Sprintf("default %s %v is not a multiple of the slider step %v from %v",
			name, value, step, min))
	}
	return warnings
}
