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

// PgxCurrencyRepository reads currencies.
type PgxCurrencyRepository struct {
	BaseRepository
}

func newPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CurrencyReader = (*PgxCurrencyRepository)(nil)

// ListCurrencies retrieves every currency ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return r.listCurrencies(ctx, r.Pool)
}

func (r *PgxCurrencyRepository) listCurrencies(ctx context.Context, q querier) ([]domain.Currency, error) {
	query := `
		SELECT currency_id, code, symbol, name, is_base
		FROM currencies
		ORDER BY code;
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	modelCurrencies, err := collect(rows, func(row pgx.Rows, m *models.Currency) error {
		return row.Scan(&m.CurrencyID, &m.Code, &m.Symbol, &m.Name, &m.IsBase)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currency: %w", err)
	}

	currencies := make([]domain.Currency, len(modelCurrencies))
	for i, m := range modelCurrencies {
		currencies[i] = mapping.ToDomainCurrency(m)
	}
	return currencies, nil
}
