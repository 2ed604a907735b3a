package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationFullFile(t *testing.T) {
	path := writeConfig(t, `logging:
  level: debug
  format: console
  outputFile: /tmp/loan-calculator.log
output:
  format: csv
currency:
  symbol: "$"
  decimalPlaces: 0
defaults:
  amount: 12000
  years: 3.5
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Logging.Level != "debug" {
		t.Errorf("expected logging level debug, got %q", conf.Logging.Level)
	}
	if conf.Logging.Format != "console" {
		t.Errorf("expected logging format console, got %q", conf.Logging.Format)
	}
	if conf.Logging.OutputFile != "/tmp/loan-calculator.log" {
		t.Errorf("expected logging outputFile, got %q", conf.Logging.OutputFile)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("expected output format csv, got %q", conf.Output.Format)
	}
	if conf.Currency.Symbol != "$" {
		t.Errorf("expected currency symbol $, got %q", conf.Currency.Symbol)
	}
	if conf.Currency.DecimalPlaces != 0 {
		t.Errorf("expected 0 decimal places, got %d", conf.Currency.DecimalPlaces)
	}
	if conf.Defaults.Amount != 12000 || conf.Defaults.Years != 3.5 {
		t.Errorf("expected defaults 12000/3.5, got %v/%v", conf.Defaults.Amount, conf.Defaults.Years)
	}
}

func TestLoadConfigurationAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "output:\n  format: pretty\n")

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Currency.Symbol != "£" {
		t.Errorf("expected default symbol £, got %q", conf.Currency.Symbol)
	}
	if conf.Currency.DecimalPlaces != 2 {
		t.Errorf("expected default 2 decimal places, got %d", conf.Currency.DecimalPlaces)
	}
	if conf.Defaults.Amount != 7500 {
		t.Errorf("expected default amount 7500, got %v", conf.Defaults.Amount)
	}
	if conf.Defaults.Years != 2.5 {
		t.Errorf("expected default years 2.5, got %v", conf.Defaults.Years)
	}
	if conf.Logging.Level != "" {
		t.Errorf("expected empty logging level, got %q", conf.Logging.Level)
	}
}

func TestLoadConfigurationExplicitZeroDefaults(t *testing.T) {
	path := writeConfig(t, "defaults:\n  amount: 0\n  years: 0\n")

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if conf.Defaults.Amount != 0 || conf.Defaults.Years != 0 {
		t.Errorf("expected explicit zero defaults, got %v/%v", conf.Defaults.Amount, conf.Defaults.Years)
	}
}

func TestLoadConfigurationInvalidYAML(t *testing.T) {
	path := writeConfig(t, "currency: [unterminated\n")

	if _, err := LoadConfiguration(path); err == nil {
		t.Fatal("expected error for invalid YAML but got nil")
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader("defaults:\n  amount: 20000\n  years: 5\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if conf.Defaults.Amount != 20000 || conf.Defaults.Years != 5 {
		t.Errorf("expected defaults 20000/5, got %v/%v", conf.Defaults.Amount, conf.Defaults.Years)
	}
	if conf.Currency.Symbol != "£" {
		t.Errorf("expected default symbol £, got %q", conf.Currency.Symbol)
	}
}

func TestLoadConfigurationEnvironmentOverride(t *testing.T) {
	t.Setenv("LOANCALC_CURRENCY_SYMBOL", "€")
	t.Setenv("LOANCALC_DEFAULTS_AMOUNT", "5000")

	path := writeConfig(t, "currency:\n  symbol: \"$\"\n")
	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Currency.Symbol != "€" {
		t.Errorf("expected environment symbol €, got %q", conf.Currency.Symbol)
	}
	if conf.Defaults.Amount != 5000 {
		t.Errorf("expected environment amount 5000, got %v", conf.Defaults.Amount)
	}
}

func TestDefault(t *testing.T) {
	conf := Default()
	if conf.Currency.Symbol != "£" || conf.Currency.DecimalPlaces != 2 {
		t.Errorf("unexpected default currency %+v", conf.Currency)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected no warnings for defaults, got %v", warnings)
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		conf          Configuration
		expectedCount int
		contains      string
	}{
		{
			name: "Valid configuration",
			conf: Configuration{
				Currency: CurrencyConfig{Symbol: "£", DecimalPlaces: 2},
				Defaults: DefaultsConfig{Amount: 7500, Years: 2.5},
			},
			expectedCount: 0,
		},
		{
			name: "Amount above slider range",
			conf: Configuration{
				Currency: CurrencyConfig{Symbol: "£", DecimalPlaces: 2},
				Defaults: DefaultsConfig{Amount: 25000, Years: 2.5},
			},
			expectedCount: 1,
			contains:      "outside the slider range",
		},
		{
			name: "Amount off the slider step",
			conf: Configuration{
				Currency: CurrencyConfig{Symbol: "£", DecimalPlaces: 2},
				Defaults: DefaultsConfig{Amount: 7550, Years: 2.5},
			},
			expectedCount: 1,
			contains:      "slider step",
		},
		{
			name: "Years below range and off step",
			conf: Configuration{
				Currency: CurrencyConfig{Symbol: "£", DecimalPlaces: 2},
				Defaults: DefaultsConfig{Amount: 7500, Years: 0.25},
			},
			expectedCount: 2,
		},
		{
			name: "Empty symbol and negative decimals",
			conf: Configuration{
				Currency: CurrencyConfig{Symbol: "", DecimalPlaces: -1},
				Defaults: DefaultsConfig{Amount: 7500, Years: 2.5},
			},
			expectedCount: 2,
			contains:      "clamped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			if len(warnings) != tt.expectedCount {
				t.Fatalf("expected %d warnings, got %d: %v", tt.expectedCount, len(warnings), warnings)
			}
			if tt.contains == "" {
				return
			}
			found := false
			for _, w := range warnings {
				if strings.Contains(w, tt.contains) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a warning containing %q, got %v", tt.contains, warnings)
			}
		})
	}
}
