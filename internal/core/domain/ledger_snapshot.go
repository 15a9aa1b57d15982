package domain

// LedgerSnapshot is the full read-only dataset a valuation run works on.
// It is loaded once and never mutated.
type LedgerSnapshot struct {
	Currencies    []Currency
	Accounts      []Account
	TaxCodes      []TaxCode
	Customers     []Customer
	Invoices      []Invoice
	Transactions  []Transaction
	ExchangeRates []ExchangeRateObservation
}
