package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind identifies the document a set of lines belongs to.
type TransactionKind string

const (
	Receipt      TransactionKind = "RECEIPT"
	Payment      TransactionKind = "PAYMENT"
	Transfer     TransactionKind = "TRANSFER"
	JournalEntry TransactionKind = "JOURNAL_ENTRY"
)

// Transaction is a dated ledger document.
//
// Receipts post against MoneyAccountID (the debit account) and payments against
// MoneyAccountID (the credit account). Transfers use FromAccountID/ToAccountID and
// carry no lines. Journal entries carry lines with Debit/Credit amounts.
type Transaction struct {
	TransactionID  uuid.UUID         `json:"transactionID"`
	Kind           TransactionKind   `json:"kind"`
	Date           time.Time         `json:"date"`
	Contact        string            `json:"contact"`
	Description    string            `json:"description"`
	MoneyAccountID *uuid.UUID        `json:"moneyAccountID,omitempty"`
	FromAccountID  *uuid.UUID        `json:"fromAccountID,omitempty"`
	ToAccountID    *uuid.UUID        `json:"toAccountID,omitempty"`
	FromAmount     decimal.Decimal   `json:"fromAmount"`
	ToAmount       decimal.Decimal   `json:"toAmount"` // Zero means same as FromAmount
	Lines          []TransactionLine `json:"lines"`
}

// TransactionLine is a single line item of a transaction.
type TransactionLine struct {
	LineID            uuid.UUID       `json:"lineID"`
	AccountID         *uuid.UUID      `json:"accountID,omitempty"`
	TaxCodeID         *uuid.UUID      `json:"taxCodeID,omitempty"`
	Amount            decimal.Decimal `json:"amount"` // Native (money account) currency, tax inclusive
	Debit             decimal.Decimal `json:"debit"`  // Journal entries only
	Credit            decimal.Decimal `json:"credit"` // Journal entries only
	Description       string          `json:"description"`
	PurchaseInvoiceID *uuid.UUID      `json:"purchaseInvoiceID,omitempty"`
	SalesInvoiceID    *uuid.UUID      `json:"salesInvoiceID,omitempty"`
}

// TransferredIn returns the amount credited to the destination of a transfer.
func (t Transaction) TransferredIn() decimal.Decimal {
	if t.ToAmount.IsZero() {
		return t.FromAmount
	}
	return t.ToAmount
}
