package models

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Customer is a row of the customers table.
type Customer struct {
	CustomerID pgtype.UUID `db:"customer_id"`
	Name       string      `db:"name"`
	CurrencyID pgtype.UUID `db:"currency_id"`
}

// Invoice is a row of the invoices table.
type Invoice struct {
	InvoiceID  pgtype.UUID `db:"invoice_id"`
	Kind       string      `db:"kind"`
	IssueDate  time.Time   `db:"issue_date"`
	CustomerID pgtype.UUID `db:"customer_id"`
}

// InvoiceLine is a row of the invoice_lines table.
type InvoiceLine struct {
	InvoiceID pgtype.UUID `db:"invoice_id"`
	LineNo    int32       `db:"line_no"`
	AccountID pgtype.UUID `db:"account_id"`
	TaxCodeID pgtype.UUID `db:"tax_code_id"`
}
