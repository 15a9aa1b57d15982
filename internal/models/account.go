package models

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table. CurrencyID and DefaultTaxCodeID are nullable;
// Kind is one of BANK, CASH, GENERAL_LEDGER or CONTROL.
type Account struct {
	AccountID        pgtype.UUID     `db:"account_id"`
	Name             string          `db:"name"`
	Kind             string          `db:"kind"`
	CurrencyID       pgtype.UUID     `db:"currency_id"`
	StartingBalance  decimal.Decimal `db:"starting_balance"`
	DefaultTaxCodeID pgtype.UUID     `db:"default_tax_code_id"`
}
