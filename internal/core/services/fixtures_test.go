package services_test

import (
	"time"

	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func ptr(id uuid.UUID) *uuid.UUID {
	return &id
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ledgerFixture is a small GBP-based ledger with one EUR bank account.
type ledgerFixture struct {
	gbp, eur, usd uuid.UUID

	current, euroBank, petty uuid.UUID
	sales, office            uuid.UUID
	payable, receivable      uuid.UUID
	fixedAssets              uuid.UUID
	vat20                    uuid.UUID
	snapshot                 *domain.LedgerSnapshot
}

func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		gbp:         uuid.New(),
		eur:         uuid.New(),
		usd:         uuid.New(),
		current:     uuid.New(),
		euroBank:    uuid.New(),
		petty:       uuid.New(),
		sales:       uuid.New(),
		office:      uuid.New(),
		payable:     uuid.New(),
		receivable:  uuid.New(),
		fixedAssets: uuid.New(),
		vat20:       uuid.New(),
	}
	f.snapshot = &domain.LedgerSnapshot{
		Currencies: []domain.Currency{
			{CurrencyID: f.gbp, Code: "GBP", IsBase: true},
			{CurrencyID: f.eur, Code: "EUR"},
			{CurrencyID: f.usd, Code: "USD"},
		},
		Accounts: []domain.Account{
			{AccountID: f.current, Name: "Current Account", Kind: domain.BankAccount, StartingBalance: dec("500")},
			{AccountID: f.euroBank, Name: "Euro Bank", Kind: domain.BankAccount, CurrencyID: ptr(f.eur), StartingBalance: dec("1000")},
			{AccountID: f.petty, Name: "Petty Cash", Kind: domain.CashAccount, StartingBalance: dec("50")},
			{AccountID: f.sales, Name: "Sales", Kind: domain.GeneralLedgerAccount},
			{AccountID: f.office, Name: "Office Costs", Kind: domain.GeneralLedgerAccount},
			{AccountID: f.payable, Name: "Accounts Payable", Kind: domain.ControlAccount},
			{AccountID: f.receivable, Name: "Accounts Receivable", Kind: domain.ControlAccount, DefaultTaxCodeID: ptr(f.vat20)},
		},
		TaxCodes: []domain.TaxCode{
			{TaxCodeID: f.vat20, Name: "VAT 20%", Components: []domain.TaxComponent{{Name: "VAT", Rate: dec("20")}}},
		},
		ExchangeRates: []domain.ExchangeRateObservation{
			{Date: day(1), CurrencyID: f.eur, Rate: dec("1.10")},
			{Date: day(1), CurrencyID: f.usd, Rate: dec("0.80")},
			{Date: day(10), CurrencyID: f.eur, Rate: dec("1.20")},
		},
	}
	return f
}

// withStandardActivity adds a payment, a EUR receipt, a transfer and a journal entry.
func (f *ledgerFixture) withStandardActivity() *ledgerFixture {
	f.snapshot.Transactions = append(f.snapshot.Transactions,
		domain.Transaction{
			TransactionID:  uuid.New(),
			Kind:           domain.Payment,
			Date:           day(5),
			Contact:        "Stationers Ltd",
			Description:    "Supplier settlement",
			MoneyAccountID: ptr(f.current),
			Lines: []domain.TransactionLine{
				{LineID: uuid.New(), AccountID: ptr(f.payable), TaxCodeID: ptr(f.vat20), Amount: dec("120")},
			},
		},
		domain.Transaction{
			TransactionID:  uuid.New(),
			Kind:           domain.Receipt,
			Date:           day(12),
			Contact:        "Client GmbH",
			MoneyAccountID: ptr(f.euroBank),
			Lines: []domain.TransactionLine{
				{LineID: uuid.New(), AccountID: ptr(f.sales), TaxCodeID: ptr(f.vat20), Amount: dec("132")},
			},
		},
		domain.Transaction{
			TransactionID: uuid.New(),
			Kind:          domain.Transfer,
			Date:          day(15),
			FromAccountID: ptr(f.current),
			ToAccountID:   ptr(f.petty),
			FromAmount:    dec("20"),
		},
		domain.Transaction{
			TransactionID: uuid.New(),
			Kind:          domain.JournalEntry,
			Date:          day(20),
			Description:   "Office supplies paid by bank",
			Lines: []domain.TransactionLine{
				{LineID: uuid.New(), AccountID: ptr(f.office), Debit: dec("30")},
				{LineID: uuid.New(), AccountID: ptr(f.current), Credit: dec("30")},
			},
		},
	)
	return f
}

func (f *ledgerFixture) addTransaction(txn domain.Transaction) {
	if txn.TransactionID == uuid.Nil {
		txn.TransactionID = uuid.New()
	}
	f.snapshot.Transactions = append(f.snapshot.Transactions, txn)
}

func january() domain.Period {
	return domain.Period{From: day(1), To: day(31)}
}
