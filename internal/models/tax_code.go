package models

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// TaxCode is a row of the tax_codes table.
type TaxCode struct {
	TaxCodeID pgtype.UUID `db:"tax_code_id"`
	Name      string      `db:"name"`
}

// TaxComponent is a row of the tax_components table.
type TaxComponent struct {
	TaxCodeID pgtype.UUID     `db:"tax_code_id"`
	Name      string          `db:"name"`
	Rate      decimal.Decimal `db:"rate"`
}
