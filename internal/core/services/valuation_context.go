package services

import (
	"fmt"

	"github.com/SscSPs/money_valuation/internal/apperrors"
	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/google/uuid"
)

// ValuationContext is built once per run and threaded through every engine component.
type ValuationContext struct {
	baseCurrency uuid.UUID
}

// NewValuationContext finds the single base currency among currencies.
// Zero or several base currencies is a configuration error.
func NewValuationContext(currencies []domain.Currency) (ValuationContext, error) {
	var bases []uuid.UUID
	for _, c := range currencies {
		if c.IsBase {
			bases = append(bases, c.CurrencyID)
		}
	}
	switch len(bases) {
	case 1:
		return ValuationContext{baseCurrency: bases[0]}, nil
	case 0:
		return ValuationContext{}, fmt.Errorf("%w: no base currency is defined", apperrors.ErrConfiguration)
	default:
		return ValuationContext{}, fmt.Errorf("%w: expected a single base currency, found %d", apperrors.ErrConfiguration, len(bases))
	}
}

// BaseCurrency returns the reporting currency.
func (c ValuationContext) BaseCurrency() uuid.UUID {
	return c.baseCurrency
}

// Resolve substitutes the base currency for an absent currency.
func (c ValuationContext) Resolve(currencyID *uuid.UUID) uuid.UUID {
	if currencyID == nil {
		return c.baseCurrency
	}
	return *currencyID
}
