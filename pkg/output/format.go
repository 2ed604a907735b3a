// Package output provides utilities for formatting and displaying loan quotes.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/iwvelando/loan-calculator/internal/quote"
	"github.com/iwvelando/loan-calculator/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable summary.
func PrettyFormat(w io.Writer, quotes []quote.Quote) {
	p := message.NewPrinter(language.English)
	for i, q := range quotes {
		_, _ = p.Fprintf(w, "--- Quote for %s over %s ---\n", q.Labels.Amount, q.Labels.Term)
		_, _ = p.Fprintf(w, "%s%s\n", constants.LabelBorrowPrefix, q.Labels.Amount)
		_, _ = p.Fprintf(w, "%s%s\n", constants.LabelYearsPrefix, q.Labels.Term)
		_, _ = p.Fprintf(w, "%-17s | %s\n", constants.LabelInterestRate, q.Labels.Rate)
		_, _ = p.Fprintf(w, "%-17s | %s\n", constants.LabelMonthlyRepayment, q.Labels.Payment)
		_, _ = p.Fprintf(w, "%-17s | %s over %d payments\n", "Total repayable", q.Labels.TotalRepayable,
			int(q.Years*constants.MonthsPerYear))
		_, _ = p.Fprintf(w, "%-17s | %s\n", "Total interest", q.Labels.TotalInterest)
		// Raw figures with locale digit grouping
		_, _ = p.Fprintf(w, "%-17s | %.2f borrowed, %.2f monthly, %.2f repaid\n", "Figures",
			q.Amount, q.MonthlyPayment, q.TotalRepayable)
		if len(quotes) > 1 && i < len(quotes)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, quotes []quote.Quote) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"amount", "years", "interest rate", "monthly payment", "total repayable", "total interest"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, q := range quotes {
		record := []string{
			q.Labels.Amount, q.Labels.Term, q.Labels.Rate, q.Labels.Payment,
			q.Labels.TotalRepayable, q.Labels.TotalInterest,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSONFormat outputs the quotes as an indented JSON array.
func JSONFormat(w io.Writer, quotes []quote.Quote) error {
	if quotes == nil {
		quotes = []quote.Quote{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(quotes)
}

// Write renders quotes in the named output format.
func Write(w io.Writer, format string, quotes []quote.Quote) error {
	switch format {
	case constants.OutputFormatPretty:
		PrettyFormat(w, quotes)
	case constants.OutputFormatCSV:
		return CsvFormat(w, quotes)
	case constants.OutputFormatJSON:
		return JSONFormat(w, quotes)
	default:
		return fmt.Errorf("unsupported output format %s", format)
	}
	return nil
}
