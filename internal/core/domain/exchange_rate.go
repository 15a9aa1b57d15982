package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeRateObservation is the value of one unit of CurrencyID expressed in the
// base currency, as published on Date.
type ExchangeRateObservation struct {
	Date       time.Time       `json:"date"`
	CurrencyID uuid.UUID       `json:"currencyID"`
	Rate       decimal.Decimal `json:"rate"`
}
