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

// PgxAccountRepository reads bank, cash, general ledger and control accounts.
type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountReader = (*PgxAccountRepository)(nil)

// ListAccounts retrieves every account ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return r.listAccounts(ctx, r.Pool)
}

func (r *PgxAccountRepository) listAccounts(ctx context.Context, q querier) ([]domain.Account, error) {
	query := `
		SELECT account_id, name, kind, currency_id, starting_balance, default_tax_code_id
		FROM accounts
		ORDER BY name;
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	modelAccounts, err := collect(rows, func(row pgx.Rows, m *models.Account) error {
		return row.Scan(&m.AccountID, &m.Name, &m.Kind, &m.CurrencyID, &m.StartingBalance, &m.DefaultTaxCodeID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	accounts := make([]domain.Account, len(modelAccounts))
	for i, m := range modelAccounts {
		accounts[i] = mapping.ToDomainAccount(m)
	}
	return accounts, nil
}
