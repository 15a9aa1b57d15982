package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TaxComponent contributes a percentage rate to a tax code.
type TaxComponent struct {
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"` // Percentage, e.g. 20 for 20%
}

// TaxCode groups the components applied to a tax-inclusive amount.
type TaxCode struct {
	TaxCodeID  uuid.UUID      `json:"taxCodeID"`
	Name       string         `json:"name"`
	Components []TaxComponent `json:"components"`
}

// TaxMultiplier returns 1 + sum(component rates)/100. No components gives exactly 1.
func TaxMultiplier(components []TaxComponent) decimal.Decimal {
	total := hundred
	for _, c := range components {
		total = total.Add(c.Rate)
	}
	return total.Div(hundred)
}
