package models

import "github.com/jackc/pgx/v5/pgtype"

// Currency is a row of the currencies table.
type Currency struct {
	CurrencyID pgtype.UUID `db:"currency_id"`
	Code       string      `db:"code"`
	Symbol     string      `db:"symbol"`
	Name       string      `db:"name"`
	IsBase     bool        `db:"is_base"`
}
