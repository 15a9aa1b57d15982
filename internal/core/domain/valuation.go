package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Valuation is a tax-inclusive amount split into its net and tax portions.
type Valuation struct {
	Net decimal.Decimal `json:"net"`
	Tax decimal.Decimal `json:"tax"`
}

// Gross returns Net + Tax.
func (v Valuation) Gross() decimal.Decimal {
	return v.Net.Add(v.Tax)
}

// Neg flips the sign of both portions.
func (v Valuation) Neg() Valuation {
	return Valuation{Net: v.Net.Neg(), Tax: v.Tax.Neg()}
}

// ValuedAmounts holds a line's net/tax split in the money account currency, in the base
// currency at the transaction date, and in the base currency at the invoice date.
type ValuedAmounts struct {
	Account           Valuation `json:"account"`
	Base              Valuation `json:"base"`
	BaseAtInvoiceDate Valuation `json:"baseAtInvoiceDate"`
}

// Neg flips the sign of all six amounts.
func (a ValuedAmounts) Neg() ValuedAmounts {
	return ValuedAmounts{
		Account:           a.Account.Neg(),
		Base:              a.Base.Neg(),
		BaseAtInvoiceDate: a.BaseAtInvoiceDate.Neg(),
	}
}

// ValuedLine is one valued transaction line, ready for categorized reporting.
type ValuedLine struct {
	TransactionID uuid.UUID       `json:"transactionID"`
	Kind          TransactionKind `json:"kind"`
	Date          time.Time       `json:"date"`
	AccountName   string          `json:"accountName"` // Money account the line posted through
	IsCashAccount bool            `json:"isCashAccount"`
	CurrencyID    *uuid.UUID      `json:"currencyID,omitempty"`
	Contact       string          `json:"contact"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Amounts       ValuedAmounts   `json:"amounts"`
}

// BalanceSnapshot is the balance of an account after all activity on Date.
type BalanceSnapshot struct {
	AccountName string          `json:"accountName"`
	Date        time.Time       `json:"date"`
	Balance     decimal.Decimal `json:"balance"`
}

// RevaluationCategory labels the synthetic lines produced from revaluation entries.
const RevaluationCategory = "Currency revaluation"

// RevaluationEntry is the aggregate unrealized gain/loss for one currency on one rate change.
type RevaluationEntry struct {
	Date          time.Time       `json:"date"`
	CurrencyID    uuid.UUID       `json:"currencyID"`
	CurrencyCode  string          `json:"currencyCode"`
	PreviousRate  decimal.Decimal `json:"previousRate"`
	NewRate       decimal.Decimal `json:"newRate"`
	PreviousValue decimal.Decimal `json:"previousValue"` // Base value at the previous rate
	NewValue      decimal.Decimal `json:"newValue"`      // Base value at the new rate
	Amount        decimal.Decimal `json:"amount"`        // NewValue - PreviousValue
	Contact       string          `json:"contact"`
	Description   string          `json:"description"`
}

// ToValuedLine re-expresses the entry as a base-currency line so it can be merged with
// ordinary valued lines. A revaluation carries no tax and no account-currency amount.
func (e RevaluationEntry) ToValuedLine() ValuedLine {
	currencyID := e.CurrencyID
	base := Valuation{Net: e.Amount, Tax: decimal.Zero}
	return ValuedLine{
		Date:        e.Date,
		CurrencyID:  &currencyID,
		Contact:     e.Contact,
		Description: e.Description,
		Category:    RevaluationCategory,
		Amounts: ValuedAmounts{
			Account:           Valuation{Net: decimal.Zero, Tax: decimal.Zero},
			Base:              base,
			BaseAtInvoiceDate: base,
		},
	}
}
