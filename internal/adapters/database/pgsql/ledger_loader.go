package pgsql

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/money_valuation/internal/core/domain"
	portsrepo "github.com/SscSPs/money_valuation/internal/core/ports/repositories"
	"github.com/SscSPs/money_valuation/internal/middleware"
)

// PgxLedgerLoader reads every table the valuation engine needs inside one snapshot transaction.
type PgxLedgerLoader struct {
	BaseRepository
	currencies   *PgxCurrencyRepository
	accounts     *PgxAccountRepository
	rates        *PgxExchangeRateRepository
	taxCodes     *PgxTaxCodeRepository
	invoices     *PgxInvoiceRepository
	transactions *PgxTransactionRepository
}

var _ portsrepo.LedgerLoader = (*PgxLedgerLoader)(nil)

// LoadLedger returns the ledger as it stands, with transactions dated on or before until.
func (l *PgxLedgerLoader) LoadLedger(ctx context.Context, until time.Time) (_ *domain.LedgerSnapshot, err error) {
	tx, err := l.BeginSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rbErr := l.Rollback(ctx, tx); rbErr != nil && err == nil {
			err = rbErr
		}
	}()

	snapshot := &domain.LedgerSnapshot{}
	if snapshot.Currencies, err = l.currencies.listCurrencies(ctx, tx); err != nil {
		return nil, err
	}
	if snapshot.Accounts, err = l.accounts.listAccounts(ctx, tx); err != nil {
		return nil, err
	}
	if snapshot.ExchangeRates, err = l.rates.listObservations(ctx, tx); err != nil {
		return nil, err
	}
	if snapshot.TaxCodes, err = l.taxCodes.listTaxCodes(ctx, tx); err != nil {
		return nil, err
	}
	if snapshot.Invoices, err = l.invoices.listInvoices(ctx, tx); err != nil {
		return nil, err
	}
	if snapshot.Customers, err = l.invoices.listCustomers(ctx, tx); err != nil {
		return nil, err
	}
	if snapshot.Transactions, err = l.transactions.listTransactions(ctx, tx, until); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Ledger loaded",
		slog.Int("currencies", len(snapshot.Currencies)),
		slog.Int("accounts", len(snapshot.Accounts)),
		slog.Int("exchange_rates", len(snapshot.ExchangeRates)),
		slog.Int("transactions", len(snapshot.Transactions)))
	return snapshot, nil
}
