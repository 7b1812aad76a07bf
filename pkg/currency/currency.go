// Package currency renders monetary amounts for display. Amounts are
// plain decimals everywhere else in the system; formatting is a
// presentation concern kept out of the engine proper.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	crore = decimal.NewFromInt(10_000_000)
	lakh  = decimal.NewFromInt(100_000)
	thou  = decimal.NewFromInt(1_000)
)

// Format renders an abbreviated INR amount: ₹1.2Cr, ₹3.5L, ₹12.0K, or the
// fully grouped figure below a thousand.
func Format(amount decimal.Decimal) string {
	abs := amount.Abs()
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	switch {
	case abs.GreaterThanOrEqual(crore):
		return sign + "₹" + abs.Div(crore).Round(1).StringFixed(1) + "Cr"
	case abs.GreaterThanOrEqual(lakh):
		return sign + "₹" + abs.Div(lakh).Round(1).StringFixed(1) + "L"
	case abs.GreaterThanOrEqual(thou):
		return sign + "₹" + abs.Div(thou).Round(1).StringFixed(1) + "K"
	default:
		return sign + "₹" + groupIndian(abs.Round(0).String())
	}
}

// FormatFull renders the whole-rupee amount with Indian digit grouping:
// ₹12,34,567.
func FormatFull(amount decimal.Decimal) string {
	abs := amount.Abs().Round(0).String()
	if amount.IsNegative() {
		return "-₹" + groupIndian(abs)
	}
	return "₹" + groupIndian(abs)
}

// groupIndian inserts commas in the Indian numbering style: the last three
// digits form one group, every earlier pair forms another (1,23,45,678).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
