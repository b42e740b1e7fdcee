package product

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Free is the cost of plans without a price
const Free = "Free"

var printer = message.NewPrinter(language.English)

// ParseBilling renders the cost of a plan billing model,
// e.g. {"currency":"USD","price":10,"period":1,"period-unit":"month"} is $10 per month
func ParseBilling(model map[string]interface{}) string {
	if model == nil {
		return Free
	}
	price, ok := toFloat(model["price"])
	if !ok || price <= 0 {
		return Free
	}
	symbol := currencySymbol(toString(model["currency"]))
	amount := strconv.FormatFloat(price, 'f', -1, 64)
	unit := toString(model["period-unit"])
	if unit == "" {
		unit = "month"
	}
	period, ok := toFloat(model["period"])
	if !ok || period <= 1 {
		return fmt.Sprintf("%s%s per %s", symbol, amount, unit)
	}
	return fmt.Sprintf("%s%s per %s %ss", symbol, amount, strconv.FormatFloat(period, 'f', -1, 64), strings.TrimSuffix(unit, "s"))
}

func currencySymbol(code string) string {
	if code == "" {
		code = "USD"
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " "
	}
	return printer.Sprint(currency.Symbol(unit))
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}
