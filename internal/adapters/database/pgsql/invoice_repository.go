package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_valuation/internal/core/domain"
	portsrepo "github.com/SscSPs/money_valuation/internal/core/ports/repositories"
	"github.com/SscSPs/money_valuation/internal/models"
	"github.com/SscSPs/money_valuation/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxInvoiceRepository reads invoices, their lines and customers.
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceReader = (*PgxInvoiceRepository)(nil)

// ListInvoices retrieves every invoice with its lines.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return r.listInvoices(ctx, r.Pool)
}

// ListCustomers retrieves every customer.
func (r *PgxInvoiceRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return r.listCustomers(ctx, r.Pool)
}

func (r *PgxInvoiceRepository) listInvoices(ctx context.Context, q querier) ([]domain.Invoice, error) {
	rows, err := q.Query(ctx, `
		SELECT invoice_id, kind, issue_date, customer_id
		FROM invoices
		ORDER BY issue_date, invoice_id;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	invoices, err := collect(rows, func(row pgx.Rows, m *models.Invoice) error {
		return row.Scan(&m.InvoiceID, &m.Kind, &m.IssueDate, &m.CustomerID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoice: %w", err)
	}

	rows, err = q.Query(ctx, `
		SELECT invoice_id, line_no, account_id, tax_code_id
		FROM invoice_lines
		ORDER BY invoice_id, line_no;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice lines: %w", err)
	}
	lines, err := collect(rows, func(row pgx.Rows, m *models.InvoiceLine) error {
		return row.Scan(&m.InvoiceID, &m.LineNo, &m.AccountID, &m.TaxCodeID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoice line: %w", err)
	}

	return mapping.ToDomainInvoices(invoices, lines), nil
}

func (r *PgxInvoiceRepository) listCustomers(ctx context.Context, q querier) ([]domain.Customer, error) {
	rows, err := q.Query(ctx, `SELECT customer_id, name, currency_id FROM customers ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	modelCustomers, err := collect(rows, func(row pgx.Rows, m *models.Customer) error {
		return row.Scan(&m.CustomerID, &m.Name, &m.CurrencyID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan customer: %w", err)
	}

	customers := make([]domain.Customer, len(modelCustomers))
	for i, m := range modelCustomers {
		customers[i] = mapping.ToDomainCustomer(m)
	}
	return customers, nil
}
