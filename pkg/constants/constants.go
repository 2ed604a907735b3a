// Package constants provides shared constants for the loan-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Currency defaults
const (
	// DefaultCurrencySymbol is prefixed to every formatted amount
	DefaultCurrencySymbol = "£"

	// DefaultDecimalPlaces is the number of decimals shown for amounts
	DefaultDecimalPlaces = 2

	// MaxDecimalPlaces is the largest decimal count the formatter honours
	MaxDecimalPlaces = 100

	// HalfYearSymbol is appended to whole years for a half-year term
	HalfYearSymbol = "½"
)

// Rate tiers
const (
	// FallbackInterestRate is returned for amounts outside every tier
	FallbackInterestRate = 10.0
)

// Slider ranges supplied by the UI layer
const (
	AmountMin     = 1000.0
	AmountMax     = 20000.0
	AmountStep    = 100.0
	AmountDefault = 7500.0

	YearsMin     = 1.0
	YearsMax     = 5.0
	YearsStep    = 0.5
	YearsDefault = 2.5
)

// Labels shown next to the calculated values
const (
	LabelBorrowPrefix     = "I want to borrow "
	LabelYearsPrefix      = "over "
	LabelYearsSuffix      = " years"
	LabelInterestRate     = "Interest rate"
	LabelMonthlyRepayment = "Monthly repayment"
	LabelGetQuote         = "Get your quote »"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the quote API
	DefaultServerAddress = ":8080"

	// DefaultReadTimeout is the default HTTP read timeout
	DefaultReadTimeout = "15s"

	// DefaultWriteTimeout is the default HTTP write timeout
	DefaultWriteTimeout = "15s"

	// DefaultMaxBodyBytes caps quote submission bodies (16 KB)
	DefaultMaxBodyBytes int64 = 16 * 1024
)
