package pgsql

import (
	"github.com/SscSPs/money_valuation/internal/adapters/memory"
	portsrepo "github.com/SscSPs/money_valuation/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)
	taxCodeRepo := newPgxTaxCodeRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)

	loader := &PgxLedgerLoader{
		BaseRepository: BaseRepository{Pool: dbPool},
		currencies:     currencyRepo,
		accounts:       accountRepo,
		rates:          exchangeRateRepo,
		taxCodes:       taxCodeRepo,
		invoices:       invoiceRepo,
		transactions:   transactionRepo,
	}

	return portsrepo.RepositoryProvider{
		CurrencyRepo:     currencyRepo,
		AccountRepo:      accountRepo,
		ExchangeRateRepo: exchangeRateRepo,
		TaxCodeRepo:      taxCodeRepo,
		InvoiceRepo:      invoiceRepo,
		TransactionRepo:  transactionRepo,
		Loader:           loader,
		Indexer:          memory.Index,
	}
}
