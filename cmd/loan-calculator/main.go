package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/loan-calculator/internal/config"
	"github.com/iwvelando/loan-calculator/internal/logging"
	"github.com/iwvelando/loan-calculator/internal/quote"
	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/format"
	"github.com/iwvelando/loan-calculator/pkg/output"
	"github.com/iwvelando/loan-calculator/pkg/validation"
	"go.uber.org/zap"
)

// loanTerm is one amount and term pair to quote.
type loanTerm struct {
	Amount float64
	Years  float64
}

// parseLoanTerm parses an "AMOUNT/YEARS" argument such as "7500/2.5".
func parseLoanTerm(arg string) (loanTerm, error) {
	amountPart, yearsPart, found := strings.Cut(arg, "/")
	if !found {
		return loanTerm{}, fmt.Errorf("expected AMOUNT/YEARS, got %q", arg)
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountPart), 64)
	if err != nil {
		return loanTerm{}, fmt.Errorf("invalid amount in %q: %w", arg, err)
	}
	years, err := strconv.ParseFloat(strings.TrimSpace(yearsPart), 64)
	if err != nil {
		return loanTerm{}, fmt.Errorf("invalid years in %q: %w", arg, err)
	}
	return loanTerm{Amount: amount, Years: years}, nil
}

// loadConfiguration loads the config file. A missing file at the default
// location falls back to the built-in defaults; an explicitly named file must exist.
func loadConfiguration(path string, explicit bool) (*config.Configuration, error) {
	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
	}
	return config.LoadConfiguration(path)
}

// defaultTerm builds the term quoted when no AMOUNT/YEARS arguments are
// given. Flags that were set on the command line replace the configured
// defaults, including an explicit zero.
func defaultTerm(conf *config.Configuration, amount, years float64, setFlags map[string]bool) loanTerm {
	term := loanTerm{Amount: conf.Defaults.Amount, Years: conf.Defaults.Years}
	if setFlags["amount"] {
		term.Amount = amount
	}
	if setFlags["years"] {
		term.Years = years
	}
	return term
}

// calculateQuotes quotes every term in order, submitting each one when submit is set.
func calculateQuotes(calculator *quote.Calculator, terms []loanTerm, submit bool) ([]quote.Quote, error) {
	quotes := make([]quote.Quote, 0, len(terms))
	for _, term := range terms {
		q := calculator.Calculate(term.Amount, term.Years)
		if submit {
			if err := calculator.Submit(q); err != nil {
				return nil, fmt.Errorf("failed to submit quote for %v/%v: %w", term.Amount, term.Years, err)
			}
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	amount := flag.Float64("amount", 0, "loan amount (defaults to the configured amount)")
	years := flag.Float64("years", 0, "loan term in years (defaults to the configured term)")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	submit := flag.Bool("submit", false, "request a quote for the calculated terms (\""+constants.LabelGetQuote+"\")")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [AMOUNT/YEARS ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	conf, err := loadConfiguration(*configLocation, setFlags["config"])
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	var terms []loanTerm
	for _, arg := range flag.Args() {
		term, err := parseLoanTerm(arg)
		if err != nil {
			logger.Fatal("failed to parse loan term",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		terms = append(terms, defaultTerm(conf, *amount, *years, setFlags))
	}

	calculator := quote.NewCalculator(logger,
		quote.WithCurrency(format.NewCurrencyFormatter(conf.Currency.Symbol, conf.Currency.DecimalPlaces)),
	)

	quotes, err := calculateQuotes(calculator, terms, *submit)
	if err != nil {
		logger.Fatal("failed to submit quote",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if err := output.Write(os.Stdout, outputFormat, quotes); err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
