package mapping

import (
	"time"

	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/SscSPs/money_valuation/internal/models"
)

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID: ToUUID(m.CurrencyID),
		Code:       m.Code,
		Symbol:     m.Symbol,
		Name:       m.Name,
		IsBase:     m.IsBase,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:        ToUUID(m.AccountID),
		Name:             m.Name,
		Kind:             domain.AccountKind(m.Kind),
		CurrencyID:       ToUUIDPtr(m.CurrencyID),
		StartingBalance:  m.StartingBalance,
		DefaultTaxCodeID: ToUUIDPtr(m.DefaultTaxCodeID),
	}
}

// ToDomainExchangeRateObservation converts a model ExchangeRate to a domain observation
func ToDomainExchangeRateObservation(m models.ExchangeRate) domain.ExchangeRateObservation {
	return domain.ExchangeRateObservation{
		Date:       dateOnly(m.RateDate),
		CurrencyID: ToUUID(m.CurrencyID),
		Rate:       m.Rate,
	}
}

// ToDomainTaxCodes groups component rows under their tax codes, keeping code order.
func ToDomainTaxCodes(codes []models.TaxCode, components []models.TaxComponent) []domain.TaxCode {
	index := make(map[[16]byte]int, len(codes))
	out := make([]domain.TaxCode, len(codes))
	for i, c := range codes {
		out[i] = domain.TaxCode{TaxCodeID: ToUUID(c.TaxCodeID), Name: c.Name, Components: []domain.TaxComponent{}}
		index[c.TaxCodeID.Bytes] = i
	}
	for _, comp := range components {
		i, ok := index[comp.TaxCodeID.Bytes]
		if !ok {
			continue
		}
		out[i].Components = append(out[i].Components, domain.TaxComponent{Name: comp.Name, Rate: comp.Rate})
	}
	return out
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: ToUUID(m.CustomerID),
		Name:       m.Name,
		CurrencyID: ToUUIDPtr(m.CurrencyID),
	}
}

// ToDomainInvoices attaches line rows to their invoices. Lines must arrive in line order.
func ToDomainInvoices(invoices []models.Invoice, lines []models.InvoiceLine) []domain.Invoice {
	index := make(map[[16]byte]int, len(invoices))
	out := make([]domain.Invoice, len(invoices))
	for i, inv := range invoices {
		out[i] = domain.Invoice{
			InvoiceID:  ToUUID(inv.InvoiceID),
			Kind:       domain.InvoiceKind(inv.Kind),
			IssueDate:  dateOnly(inv.IssueDate),
			CustomerID: ToUUIDPtr(inv.CustomerID),
		}
		index[inv.InvoiceID.Bytes] = i
	}
	for _, l := range lines {
		i, ok := index[l.InvoiceID.Bytes]
		if !ok {
			continue
		}
		out[i].Lines = append(out[i].Lines, domain.InvoiceLine{
			AccountID: ToUUIDPtr(l.AccountID),
			TaxCodeID: ToUUIDPtr(l.TaxCodeID),
		})
	}
	return out
}

// ToDomainTransactions attaches line rows to their transactions. Lines must arrive in line order.
func ToDomainTransactions(txns []models.Transaction, lines []models.TransactionLine) []domain.Transaction {
	index := make(map[[16]byte]int, len(txns))
	out := make([]domain.Transaction, len(txns))
	for i, t := range txns {
		out[i] = domain.Transaction{
			TransactionID:  ToUUID(t.TransactionID),
			Kind:           domain.TransactionKind(t.Kind),
			Date:           dateOnly(t.TxnDate),
			Contact:        t.Contact,
			Description:    t.Description,
			MoneyAccountID: ToUUIDPtr(t.MoneyAccountID),
			FromAccountID:  ToUUIDPtr(t.FromAccountID),
			ToAccountID:    ToUUIDPtr(t.ToAccountID),
			FromAmount:     t.FromAmount,
			ToAmount:       t.ToAmount,
		}
		index[t.TransactionID.Bytes] = i
	}
	for _, l := range lines {
		i, ok := index[l.TransactionID.Bytes]
		if !ok {
			continue
		}
		out[i].Lines = append(out[i].Lines, domain.TransactionLine{
			LineID:            ToUUID(l.LineID),
			AccountID:         ToUUIDPtr(l.AccountID),
			TaxCodeID:         ToUUIDPtr(l.TaxCodeID),
			Amount:            l.Amount,
			Debit:             l.Debit,
			Credit:            l.Credit,
			Description:       l.Description,
			PurchaseInvoiceID: ToUUIDPtr(l.PurchaseInvoiceID),
			SalesInvoiceID:    ToUUIDPtr(l.SalesInvoiceID),
		})
	}
	return out
}

// dateOnly reads a DATE column as a UTC calendar day regardless of the session time zone.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
