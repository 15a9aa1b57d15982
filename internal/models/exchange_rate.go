package models

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of the exchange_rates table: the value of one unit of CurrencyID in
// the base currency, published on RateDate.
type ExchangeRate struct {
	ExchangeRateID pgtype.UUID     `db:"exchange_rate_id"`
	CurrencyID     pgtype.UUID     `db:"currency_id"`
	RateDate       time.Time       `db:"rate_date"`
	Rate           decimal.Decimal `db:"rate"`
}
