package ports

import (
	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/google/uuid"
)

// The valuation engine never performs I/O mid-computation. It consumes the loaded
// ledger through these synchronous, read-only lookups.

// AccountLookup resolves an opaque account reference.
type AccountLookup interface {
	// LookupAccount returns the account and true, or false when the ID is unknown.
	LookupAccount(id uuid.UUID) (domain.Account, bool)
	// MoneyAccounts returns every bank and cash account in a stable order.
	MoneyAccounts() []domain.Account
}

// TaxCodeLookup resolves the components contributing to a tax code's multiplier.
type TaxCodeLookup interface {
	LookupTaxComponents(taxCodeID uuid.UUID) ([]domain.TaxComponent, bool)
}

// InvoiceLookup resolves the originating invoice of a line and its customer.
type InvoiceLookup interface {
	LookupInvoice(id uuid.UUID) (domain.Invoice, bool)
	LookupCustomer(id uuid.UUID) (domain.Customer, bool)
}

// CurrencyLookup resolves display details of a currency.
type CurrencyLookup interface {
	LookupCurrency(id uuid.UUID) (domain.Currency, bool)
}

// Categorizer maps an account to a human-readable category label.
type Categorizer interface {
	// Category returns the label for accountID, or false when the account is neither a
	// general ledger account nor listed in the chart of accounts.
	Category(accountID uuid.UUID) (label string, ok bool)
}

// LedgerLookups bundles every lookup the engine needs.
type LedgerLookups interface {
	AccountLookup
	TaxCodeLookup
	InvoiceLookup
	CurrencyLookup
}

// LedgerIndexer builds the lookups for one loaded snapshot.
type LedgerIndexer func(snapshot *domain.LedgerSnapshot) LedgerLookups
