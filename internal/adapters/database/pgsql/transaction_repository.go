package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/money_valuation/internal/core/domain"
	portsrepo "github.com/SscSPs/money_valuation/internal/core/ports/repositories"
	"github.com/SscSPs/money_valuation/internal/models"
	"github.com/SscSPs/money_valuation/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository reads receipts, payments, transfers and journal entries.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionReader = (*PgxTransactionRepository)(nil)

// ListTransactions retrieves every transaction dated on or before until, with its lines.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, until time.Time) ([]domain.Transaction, error) {
	return r.listTransactions(ctx, r.Pool, until)
}

func (r *PgxTransactionRepository) listTransactions(ctx context.Context, q querier, until time.Time) ([]domain.Transaction, error) {
	untilDate := until.Format(time.DateOnly)

	rows, err := q.Query(ctx, `
		SELECT transaction_id, kind, txn_date, contact, description,
			money_account_id, from_account_id, to_account_id,
			COALESCE(from_amount, 0), COALESCE(to_amount, 0)
		FROM transactions
		WHERE txn_date <= $1::date
		ORDER BY txn_date, seq;
	`, untilDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	txns, err := collect(rows, func(row pgx.Rows, m *models.Transaction) error {
		return row.Scan(&m.TransactionID, &m.Kind, &m.TxnDate, &m.Contact, &m.Description,
			&m.MoneyAccountID, &m.FromAccountID, &m.ToAccountID, &m.FromAmount, &m.ToAmount)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	rows, err = q.Query(ctx, `
		SELECT l.line_id, l.transaction_id, l.account_id, l.tax_code_id,
			COALESCE(l.amount, 0), COALESCE(l.debit, 0), COALESCE(l.credit, 0), l.description,
			l.purchase_invoice_id, l.sales_invoice_id
		FROM transaction_lines l
		JOIN transactions t ON t.transaction_id = l.transaction_id
		WHERE t.txn_date <= $1::date
		ORDER BY l.transaction_id, l.line_no;
	`, untilDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction lines: %w", err)
	}
	lines, err := collect(rows, func(row pgx.Rows, m *models.TransactionLine) error {
		return row.Scan(&m.LineID, &m.TransactionID, &m.AccountID, &m.TaxCodeID,
			&m.Amount, &m.Debit, &m.Credit, &m.Description,
			&m.PurchaseInvoiceID, &m.SalesInvoiceID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction line: %w", err)
	}

	return mapping.ToDomainTransactions(txns, lines), nil
}
