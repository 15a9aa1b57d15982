package models

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. Receipts and payments use MoneyAccountID,
// transfers use FromAccountID and ToAccountID.
type Transaction struct {
	TransactionID  pgtype.UUID     `db:"transaction_id"`
	Kind           string          `db:"kind"`
	TxnDate        time.Time       `db:"txn_date"`
	Contact        string          `db:"contact"`
	Description    string          `db:"description"`
	MoneyAccountID pgtype.UUID     `db:"money_account_id"`
	FromAccountID  pgtype.UUID     `db:"from_account_id"`
	ToAccountID    pgtype.UUID     `db:"to_account_id"`
	FromAmount     decimal.Decimal `db:"from_amount"`
	ToAmount       decimal.Decimal `db:"to_amount"`
}

// TransactionLine is a row of the transaction_lines table.
type TransactionLine struct {
	LineID            pgtype.UUID     `db:"line_id"`
	TransactionID     pgtype.UUID     `db:"transaction_id"`
	AccountID         pgtype.UUID     `db:"account_id"`
	TaxCodeID         pgtype.UUID     `db:"tax_code_id"`
	Amount            decimal.Decimal `db:"amount"`
	Debit             decimal.Decimal `db:"debit"`
	Credit            decimal.Decimal `db:"credit"`
	Description       string          `db:"description"`
	PurchaseInvoiceID pgtype.UUID     `db:"purchase_invoice_id"`
	SalesInvoiceID    pgtype.UUID     `db:"sales_invoice_id"`
}
