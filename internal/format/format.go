// Package format renders amounts, percentages and dates for display.
package format

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used by Currency.
const DefaultCurrency = money.USD

// DateLayout renders dates like "Mar 28, 2025".
const DateLayout = "Jan 2, 2006"

// Currency renders amount in DefaultCurrency, e.g. "$12,500.00".
func Currency(amount float64) string {
	return Money(amount, DefaultCurrency)
}

// Money renders amount in the given ISO currency, rounded to the currency's
// minor unit.
func Money(amount float64, code string) string {
	// money.New never yields a nil currency, unknown codes get a generic one
	cur := *money.New(0, code).Currency()
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// Signed prefixes the absolute amount with "+" for deposits and "-" otherwise.
func Signed(amount float64, deposit bool) string {
	abs := Currency(abs(amount))
	if deposit {
		return "+" + abs
	}
	return "-" + abs
}

// Percent renders v with a fixed number of decimals, e.g. "27.7%".
func Percent(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64) + "%"
}

// SignedPercent renders v with the shortest exact representation and a "+"
// for positive values, e.g. "+8.5%", "0%", "-3.25%".
func SignedPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64) + "%"
	if v > 0 {
		return "+" + s
	}
	return s
}

// Date renders t in DateLayout.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysLeft describes the time left before a deadline.
func DaysLeft(days int) string {
	if days <= 0 {
		return "Deadline passed"
	}
	if days == 1 {
		return "1 day left"
	}
	return fmt.Sprintf("%d days left", days)
}

// SavingsRateCaption describes the profile savings rate.
func SavingsRateCaption(rate float64) string {
	if rate == 0 {
		return "No savings rate set"
	}
	return strconv.FormatFloat(rate, 'f', -1, 64) + "% of income"
}

// ReturnCaption describes the overall investment return.
func ReturnCaption(ret float64) string {
	if ret == 0 {
		return "No return data"
	}
	return SignedPercent(ret) + " overall return"
}

// FailedToLoad is the error heading shown for a category.
func FailedToLoad(category fmt.Stringer) string {
	return "Failed to load " + category.String()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
