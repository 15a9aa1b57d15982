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

// PgxTaxCodeRepository reads tax codes and their components.
type PgxTaxCodeRepository struct {
	BaseRepository
}

func newPgxTaxCodeRepository(pool *pgxpool.Pool) *PgxTaxCodeRepository {
	return &PgxTaxCodeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TaxCodeReader = (*PgxTaxCodeRepository)(nil)

// ListTaxCodes retrieves every tax code with its components.
func (r *PgxTaxCodeRepository) ListTaxCodes(ctx context.Context) ([]domain.TaxCode, error) {
	return r.listTaxCodes(ctx, r.Pool)
}

func (r *PgxTaxCodeRepository) listTaxCodes(ctx context.Context, q querier) ([]domain.TaxCode, error) {
	rows, err := q.Query(ctx, `SELECT tax_code_id, name FROM tax_codes ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax codes: %w", err)
	}
	codes, err := collect(rows, func(row pgx.Rows, m *models.TaxCode) error {
		return row.Scan(&m.TaxCodeID, &m.Name)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tax code: %w", err)
	}

	rows, err = q.Query(ctx, `SELECT tax_code_id, name, rate FROM tax_components ORDER BY tax_code_id, position;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax components: %w", err)
	}
	components, err := collect(rows, func(row pgx.Rows, m *models.TaxComponent) error {
		return row.Scan(&m.TaxCodeID, &m.Name, &m.Rate)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tax component: %w", err)
	}

	return mapping.ToDomainTaxCodes(codes, components), nil
}
