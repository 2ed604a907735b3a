// Package quote derives the interest rate, repayment and display labels for
// a loan amount and term, and handles the quote request action.
package quote

import (
	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/format"
	"github.com/iwvelando/loan-calculator/pkg/loans"
	"github.com/iwvelando/loan-calculator/pkg/rates"
	"go.uber.org/zap"
)

// Quote holds every derived value for a given amount and term.
type Quote struct {
	Amount         float64 `json:"amount"`
	Years          float64 `json:"years"`
	InterestRate   float64 `json:"interestRate"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalRepayable float64 `json:"totalRepayable"`
	TotalInterest  float64 `json:"totalInterest"`
	Labels         Labels  `json:"labels"`
}

// Labels holds the display strings of a quote.
type Labels struct {
	Amount  string `json:"amount"`
	Term    string `json:"term"`
	Rate    string `json:"rate"`
	Payment string `json:"payment"`

	TotalRepayable string `json:"totalRepayable"`
	TotalInterest  string `json:"totalInterest"`
}

// Calculator derives quotes. It holds no state between calls.
type Calculator struct {
	logger   *zap.Logger
	resolver *rates.Resolver
	currency format.CurrencyFormatter
}

// Option customizes a Calculator.
type Option func(*Calculator)

// WithCurrency sets the currency formatter used for labels.
func WithCurrency(currency format.CurrencyFormatter) Option {
	return func(c *Calculator) {
		c.currency = currency
	}
}

// WithResolver sets the rate resolver.
func WithResolver(resolver *rates.Resolver) Option {
	return func(c *Calculator) {
		if resolver != nil {
			c.resolver = resolver
		}
	}
}

// NewCalculator creates a calculator using the default tiers and currency
// unless overridden.
func NewCalculator(logger *zap.Logger, opts ...Option) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Calculator{
		logger:   logger,
		resolver: rates.NewResolver(rates.DefaultTiers, constants.FallbackInterestRate),
		currency: format.DefaultCurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate derives the quote for amount and years. It never fails: out of
// tier amounts use the fallback rate and degenerate terms a zero payment.
func (c *Calculator) Calculate(amount, years float64) Quote {
	rate := c.resolver.Resolve(amount)
	payment := loans.CalculateMonthlyPayment(amount, rate, years)

	total := loans.CalculateTotalRepayable(payment, years)
	interest := loans.CalculateTotalInterest(amount, payment, years)

	q := Quote{
		Amount:         amount,
		Years:          years,
		InterestRate:   rate,
		MonthlyPayment: payment,
		TotalRepayable: total,
		TotalInterest:  interest,
		Labels: Labels{
			Amount:         c.currency.Format(amount),
			Term:           format.YearsLabel(years),
			Rate:           format.Percentage(rate),
			Payment:        c.currency.Format(payment),
			TotalRepayable: c.currency.Format(total),
			TotalInterest:  c.currency.Format(interest),
		},
	}

	c.logger.Debug("quote calculated",
		zap.String("op", "quote.Calculate"),
		zap.Float64("amount", amount),
		zap.Float64("years", years),
		zap.Float64("rate", rate),
		zap.Float64("payment", payment),
	)
	return q
}

// Submit handles a quote request. No request is sent anywhere; the quote
// is only logged.
func (c *Calculator) Submit(q Quote) error {
	c.logger.Info("get quote requested",
		zap.String("op", "quote.Submit"),
		zap.String("action", constants.LabelGetQuote),
		zap.Float64("amount", q.Amount),
		zap.Float64("years", q.Years),
		zap.Float64("interestRate", q.InterestRate),
		zap.Float64("monthlyPayment", q.MonthlyPayment),
	)
	return nil
}
