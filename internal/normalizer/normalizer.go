// Package normalizer converts raw user-entered field values into their
// canonical stored form.
package normalizer

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"rpires/nf-control/internal/recerror"

	"github.com/shopspring/decimal"
)

const issueDateLayout = "02/01/2006"

var (
	nonDigitRe       = regexp.MustCompile(`[^0-9]`)
	groupedThousands = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)
)

// NormalizeOperationCode normalizes a raw operation code to the dotted D.DDD
// form. Input with exactly four digits (with or without separators) becomes
// "D.DDD"; anything else is returned trimmed and unchanged, so callers must
// still validate the result. Empty input yields an empty string.
func NormalizeOperationCode(raw string) string {
	if raw == "" {
		return ""
	}
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) == 4 {
		return digits[:1] + "." + digits[1:]
	}
	return strings.TrimSpace(raw)
}

// ParseIssueDate parses a date string under the day-first convention.
func ParseIssueDate(raw string) (time.Time, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return time.Time{}, &recerror.FormatError{Field: "issue date", Value: raw, Err: errors.New("empty value")}
	}

	// Day-first layouts tried in order of likelihood; ISO accepted as well.
	layouts := []string{
		"02/01/2006",
		"2/1/2006",
		"02-01-2006",
		"02.01.2006",
		"2.1.2006",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &recerror.FormatError{Field: "issue date", Value: raw, Err: errors.New("unrecognized date format")}
}

// FormatIssueDate renders a date in the dd/mm/yyyy storage format.
func FormatIssueDate(t time.Time) string {
	return t.Format(issueDateLayout)
}

// ParseAmount parses a locale-formatted amount where '.' groups thousands and
// ',' separates decimals ("8.500,00"). A value without a comma is taken as
// already canonical unless it is dot-grouped thousands ("8.500"), so
// re-parsing a formatted amount is stable.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(raw)
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.TrimPrefix(amount, "R$")

	switch {
	case strings.Contains(amount, ","):
		amount = strings.ReplaceAll(amount, ".", "")
		amount = strings.ReplaceAll(amount, ",", ".")
	case groupedThousands.MatchString(amount):
		amount = strings.ReplaceAll(amount, ".", "")
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, &recerror.FormatError{Field: "amount", Value: raw, Err: err}
	}
	return dec, nil
}

// FormatAmount renders an amount with exactly two decimal places and a plain
// '.' decimal separator, independent of the input locale.
func FormatAmount(dec decimal.Decimal) string {
	return dec.StringFixed(2)
}
