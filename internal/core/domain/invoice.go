package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceKind distinguishes sales from purchase invoices.
type InvoiceKind string

const (
	SalesInvoice    InvoiceKind = "SALES"
	PurchaseInvoice InvoiceKind = "PURCHASE"
)

// Invoice is the originating document a receipt or payment line can settle.
type Invoice struct {
	InvoiceID  uuid.UUID     `json:"invoiceID"`
	Kind       InvoiceKind   `json:"kind"`
	IssueDate  time.Time     `json:"issueDate"`
	CustomerID *uuid.UUID    `json:"customerID,omitempty"` // Sales invoices only
	Lines      []InvoiceLine `json:"lines"`
}

// InvoiceLine carries the categorization of an invoice line.
type InvoiceLine struct {
	AccountID *uuid.UUID `json:"accountID,omitempty"`
	TaxCodeID *uuid.UUID `json:"taxCodeID,omitempty"`
}

// Customer is the counterparty of a sales invoice. Its currency is the invoice currency.
type Customer struct {
	CustomerID uuid.UUID  `json:"customerID"`
	Name       string     `json:"name"`
	CurrencyID *uuid.UUID `json:"currencyID,omitempty"`
}
