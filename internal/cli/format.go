// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount as US dollars rounded to cents.
// e.g., 6053 -> "$6,053.00", 1234.565 -> "$1,234.57"
func FormatMoney(amount decimal.Decimal) string {
	return money.New(Cents(amount), money.USD).Display()
}

// Cents converts an amount to whole cents, rounding half away from zero.
func Cents(amount decimal.Decimal) int64 {
	return amount.Round(2).Shift(2).IntPart()
}

// FormatAmount formats an amount with comma separators and two decimals
// but no currency symbol, for tables and CSV-like output.
// e.g., 1234.5 -> "1,234.50"
func FormatAmount(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return amount.StringFixed(2)
	}
	out := FormatNumber(n) + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 rate as a percentage with one decimal.
// e.g., 0.22 -> "22.0%", 0.12106 -> "12.1%"
func FormatPercent(rate decimal.Decimal) string {
	return rate.Shift(2).StringFixed(1) + "%"
}

// FormatRate formats a bracket rate without trailing zeros.
// e.g., 0.10 -> "10%", 0.125 -> "12.5%"
func FormatRate(rate decimal.Decimal) string {
	return rate.Shift(2).String() + "%"
}
