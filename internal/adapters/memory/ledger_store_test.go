package memory_test

import (
	"testing"

	"github.com/SscSPs/money_valuation/internal/adapters/memory"
	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerStore_Lookups(t *testing.T) {
	usd := domain.Currency{CurrencyID: uuid.New(), Code: "USD", IsBase: true}
	bank := domain.Account{AccountID: uuid.New(), Name: "Zeta Bank", Kind: domain.BankAccount}
	cash := domain.Account{AccountID: uuid.New(), Name: "Alpha Cash", Kind: domain.CashAccount}
	gl := domain.Account{AccountID: uuid.New(), Name: "Travel", Kind: domain.GeneralLedgerAccount}
	vat := domain.TaxCode{TaxCodeID: uuid.New(), Components: []domain.TaxComponent{{Rate: decimal.NewFromInt(20)}}}
	customer := domain.Customer{CustomerID: uuid.New(), Name: "ACME"}
	invoice := domain.Invoice{InvoiceID: uuid.New(), Kind: domain.SalesInvoice, CustomerID: &customer.CustomerID}

	store := memory.NewLedgerStore(&domain.LedgerSnapshot{
		Currencies: []domain.Currency{usd},
		Accounts:   []domain.Account{bank, gl, cash},
		TaxCodes:   []domain.TaxCode{vat},
		Customers:  []domain.Customer{customer},
		Invoices:   []domain.Invoice{invoice},
	})

	got, ok := store.LookupAccount(gl.AccountID)
	require.True(t, ok)
	assert.Equal(t, "Travel", got.Name)

	_, ok = store.LookupAccount(uuid.New())
	assert.False(t, ok)

	money := store.MoneyAccounts()
	require.Len(t, money, 2)
	assert.Equal(t, "Alpha Cash", money[0].Name)
	assert.Equal(t, "Zeta Bank", money[1].Name)

	components, ok := store.LookupTaxComponents(vat.TaxCodeID)
	require.True(t, ok)
	require.Len(t, components, 1)

	_, ok = store.LookupTaxComponents(uuid.New())
	assert.False(t, ok)

	inv, ok := store.LookupInvoice(invoice.InvoiceID)
	require.True(t, ok)
	c, ok := store.LookupCustomer(*inv.CustomerID)
	require.True(t, ok)
	assert.Equal(t, "ACME", c.Name)

	cur, ok := store.LookupCurrency(usd.CurrencyID)
	require.True(t, ok)
	assert.Equal(t, "USD", cur.Code)
}

func TestIndex(t *testing.T) {
	bank := domain.Account{AccountID: uuid.New(), Name: "Bank", Kind: domain.BankAccount}

	lookups := memory.Index(&domain.LedgerSnapshot{Accounts: []domain.Account{bank}})

	require.IsType(t, &memory.LedgerStore{}, lookups)
	got, ok := lookups.LookupAccount(bank.AccountID)
	require.True(t, ok)
	assert.Equal(t, "Bank", got.Name)
}
