package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var money = accounting.Accounting{Symbol: "$", Precision: 2}

// Price renders a decimal amount the way templates display it.
func Price(amount decimal.Decimal) string {
	return money.FormatMoneyDecimal(amount)
}
