package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind distinguishes the account families a transaction line can post against.
type AccountKind string

const (
	BankAccount          AccountKind = "BANK"
	CashAccount          AccountKind = "CASH"
	GeneralLedgerAccount AccountKind = "GENERAL_LEDGER"
	ControlAccount       AccountKind = "CONTROL"
)

// Account is a ledger account as seen by the valuation engine.
type Account struct {
	AccountID        uuid.UUID       `json:"accountID"`
	Name             string          `json:"name"`
	Kind             AccountKind     `json:"kind"`
	CurrencyID       *uuid.UUID      `json:"currencyID,omitempty"`       // Nil means base currency
	StartingBalance  decimal.Decimal `json:"startingBalance"`            // Bank/cash only, in own currency
	DefaultTaxCodeID *uuid.UUID      `json:"defaultTaxCodeID,omitempty"` // Control accounts only
}

// IsMoneyAccount reports whether the account holds a running balance (bank or cash).
func (a Account) IsMoneyAccount() bool {
	return a.Kind == BankAccount || a.Kind == CashAccount
}

// IsCash reports whether the account is a cash account.
func (a Account) IsCash() bool {
	return a.Kind == CashAccount
}

// CurrencyOr returns the account currency, or base when the account has none.
func (a Account) CurrencyOr(base uuid.UUID) uuid.UUID {
	if a.CurrencyID == nil {
		return base
	}
	return *a.CurrencyID
}
