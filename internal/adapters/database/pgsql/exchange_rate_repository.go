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

// PgxExchangeRateRepository reads the base-relative rate history.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeRateReader = (*PgxExchangeRateRepository)(nil)

// ListExchangeRateObservations retrieves the full rate history ordered by date, then by
// insertion order so that a later same-day observation comes last.
func (r *PgxExchangeRateRepository) ListExchangeRateObservations(ctx context.Context) ([]domain.ExchangeRateObservation, error) {
	return r.listObservations(ctx, r.Pool)
}

func (r *PgxExchangeRateRepository) listObservations(ctx context.Context, q querier) ([]domain.ExchangeRateObservation, error) {
	query := `
		SELECT exchange_rate_id, currency_id, rate_date, rate
		FROM exchange_rates
		ORDER BY rate_date, seq;
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	modelRates, err := collect(rows, func(row pgx.Rows, m *models.ExchangeRate) error {
		return row.Scan(&m.ExchangeRateID, &m.CurrencyID, &m.RateDate, &m.Rate)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rate: %w", err)
	}

	observations := make([]domain.ExchangeRateObservation, len(modelRates))
	for i, m := range modelRates {
		observations[i] = mapping.ToDomainExchangeRateObservation(m)
	}
	return observations, nil
}
