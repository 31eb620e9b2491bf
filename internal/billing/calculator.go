// Package billing holds the pure invoice logic: financial totals and the
// sequential numbering policy. Nothing here touches the database or the clock
// beyond what callers pass in.
package billing

import (
	"github.com/edualcrd/invoicemaker/internal/models"
	"github.com/shopspring/decimal"
)

// WithholdingRate is the IRPF retention applied to every invoice. It is a
// fixed business constant, not configurable per invoice.
var WithholdingRate = decimal.NewFromFloat(0.15)

// DefaultTaxRate is the VAT percentage used when a draft does not set one.
var DefaultTaxRate = decimal.NewFromInt(21)

var hundred = decimal.NewFromInt(100)

// Totals is the computed financial summary of an invoice draft.
type Totals struct {
	TaxableBase decimal.Decimal
	Tax         decimal.Decimal
	Withholding decimal.Decimal
	Total       decimal.Decimal
}

// Compute derives the totals for a set of line items at the given VAT
// percentage: base = Σ qty×price, tax = base×rate/100, withholding =
// base×15%, total = base + tax − withholding. An empty item list yields all
// zeros. Values are exact decimals; rounding to two places is a display
// concern only.
func Compute(items []models.LineItem, taxRatePercent decimal.Decimal) Totals {
	base := decimal.Zero
	for _, item := range items {
		base = base.Add(item.Quantity.Mul(item.UnitPrice))
	}
	tax := base.Mul(taxRatePercent).Div(hundred)
	withholding := base.Mul(WithholdingRate)
	return Totals{
		TaxableBase: base,
		Tax:         tax,
		Withholding: withholding,
		Total:       base.Add(tax).Sub(withholding),
	}
}
