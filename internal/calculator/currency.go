package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// Rates converts bill amounts into a single base currency for dashboard
// totals. The rates are fixed approximations, not market rates, which is
// why every converted figure is labelled as an estimate.
type Rates struct {
	Base   models.Currency
	ToBase map[models.Currency]decimal.Decimal
}

// DefaultRates mirrors the dashboard's historical assumption of
// 1 MVR ~= 0.065 USD.
func DefaultRates() Rates {
	return Rates{
		Base: models.CurrencyUSD,
		ToBase: map[models.Currency]decimal.Decimal{
			models.CurrencyUSD: decimal.NewFromInt(1),
			models.CurrencyMVR: decimal.RequireFromString("0.065"),
		},
	}
}

// Convert returns amount expressed in the base currency. Amounts already in
// the base currency, or in a currency without a configured rate, are
// returned unchanged.
func (r Rates) Convert(amount decimal.Decimal, c models.Currency) decimal.Decimal {
	if c == "" || c == r.Base {
		return amount
	}
	rate, ok := r.ToBase[c]
	if !ok {
		return amount
	}
	return amount.Mul(rate)
}

// Label names converted totals, e.g. "USD Est.".
func (r Rates) Label() string {
	return fmt.Sprintf("%s Est.", r.Base)
}

var printer = message.NewPrinter(language.English)

// FormatAmount renders an amount with its currency symbol and grouping for
// display, e.g. in CLI output.
func FormatAmount(amount decimal.Decimal, c models.Currency) string {
	f, _ := amount.Round(2).Float64()
	unit, err := currency.ParseISO(string(c))
	if err != nil {
		return printer.Sprintf("%s %.2f", c, f)
	}
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(f)))
}
