package memory

import (
	"sort"

	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/SscSPs/money_valuation/internal/core/ports"
	"github.com/google/uuid"
)

// LedgerStore indexes a LedgerSnapshot by ID and serves the engine's lookups.
// It is immutable after construction.
type LedgerStore struct {
	snapshot   *domain.LedgerSnapshot
	currencies map[uuid.UUID]domain.Currency
	accounts   map[uuid.UUID]domain.Account
	money      []domain.Account
	taxCodes   map[uuid.UUID]domain.TaxCode
	invoices   map[uuid.UUID]domain.Invoice
	customers  map[uuid.UUID]domain.Customer
}

var (
	_ ports.LedgerLookups = (*LedgerStore)(nil)
	_ ports.LedgerIndexer = Index
)

// NewLedgerStore builds the ID indexes for snapshot.
func NewLedgerStore(snapshot *domain.LedgerSnapshot) *LedgerStore {
	s := &LedgerStore{
		snapshot:   snapshot,
		currencies: make(map[uuid.UUID]domain.Currency, len(snapshot.Currencies)),
		accounts:   make(map[uuid.UUID]domain.Account, len(snapshot.Accounts)),
		taxCodes:   make(map[uuid.UUID]domain.TaxCode, len(snapshot.TaxCodes)),
		invoices:   make(map[uuid.UUID]domain.Invoice, len(snapshot.Invoices)),
		customers:  make(map[uuid.UUID]domain.Customer, len(snapshot.Customers)),
	}
	for _, c := range snapshot.Currencies {
		s.currencies[c.CurrencyID] = c
	}
	for _, a := range snapshot.Accounts {
		s.accounts[a.AccountID] = a
		if a.IsMoneyAccount() {
			s.money = append(s.money, a)
		}
	}
	sort.SliceStable(s.money, func(i, j int) bool { return s.money[i].Name < s.money[j].Name })
	for _, tc := range snapshot.TaxCodes {
		s.taxCodes[tc.TaxCodeID] = tc
	}
	for _, inv := range snapshot.Invoices {
		s.invoices[inv.InvoiceID] = inv
	}
	for _, c := range snapshot.Customers {
		s.customers[c.CustomerID] = c
	}
	return s
}

// Index builds a LedgerStore for snapshot. It satisfies ports.LedgerIndexer.
func Index(snapshot *domain.LedgerSnapshot) ports.LedgerLookups {
	return NewLedgerStore(snapshot)
}

// Snapshot returns the underlying dataset.
func (s *LedgerStore) Snapshot() *domain.LedgerSnapshot {
	return s.snapshot
}

// LookupCurrency returns the currency with id.
func (s *LedgerStore) LookupCurrency(id uuid.UUID) (domain.Currency, bool) {
	c, ok := s.currencies[id]
	return c, ok
}

// LookupAccount returns the account with id.
func (s *LedgerStore) LookupAccount(id uuid.UUID) (domain.Account, bool) {
	a, ok := s.accounts[id]
	return a, ok
}

// MoneyAccounts returns the bank and cash accounts ordered by name.
func (s *LedgerStore) MoneyAccounts() []domain.Account {
	return s.money
}

// LookupTaxComponents returns the components of a tax code.
func (s *LedgerStore) LookupTaxComponents(taxCodeID uuid.UUID) ([]domain.TaxComponent, bool) {
	tc, ok := s.taxCodes[taxCodeID]
	if !ok {
		return nil, false
	}
	return tc.Components, true
}

// LookupInvoice returns the purchase or sales invoice with id.
func (s *LedgerStore) LookupInvoice(id uuid.UUID) (domain.Invoice, bool) {
	inv, ok := s.invoices[id]
	return inv, ok
}

// LookupCustomer returns the customer with id.
func (s *LedgerStore) LookupCustomer(id uuid.UUID) (domain.Customer, bool) {
	c, ok := s.customers[id]
	return c, ok
}
