package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/SscSPs/money_valuation/internal/core/ports"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// ListCurrencies retrieves every currency, including the base currency flag.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// AccountReader defines read operations for account data
type AccountReader interface {
	// ListAccounts retrieves every bank, cash, general ledger and control account.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// ListExchangeRateObservations retrieves the full rate history ordered by date.
	ListExchangeRateObservations(ctx context.Context) ([]domain.ExchangeRateObservation, error)
}

// TaxCodeReader defines read operations for tax codes
type TaxCodeReader interface {
	// ListTaxCodes retrieves every tax code with its components.
	ListTaxCodes(ctx context.Context) ([]domain.TaxCode, error)
}

// InvoiceReader defines read operations for invoices and their customers
type InvoiceReader interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	// ListTransactions retrieves every transaction dated on or before until, with its lines,
	// ordered by date and then by insertion order.
	ListTransactions(ctx context.Context, until time.Time) ([]domain.Transaction, error)
}

// LedgerLoader loads a consistent, read-only snapshot of the ledger.
type LedgerLoader interface {
	LoadLedger(ctx context.Context, until time.Time) (*domain.LedgerSnapshot, error)
}

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	CurrencyRepo     CurrencyReader
	AccountRepo      AccountReader
	ExchangeRateRepo ExchangeRateReader
	TaxCodeRepo      TaxCodeReader
	InvoiceRepo      InvoiceReader
	TransactionRepo  TransactionReader
	Loader           LedgerLoader
	Indexer          ports.LedgerIndexer
}
