package services

import (
	"context"
	"time"

	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValuationReaderSvc produces valuation reports.
type ValuationReaderSvc interface {
	// RunValuation values every line in period, replays balances and derives revaluations.
	RunValuation(ctx context.Context, period domain.Period) (*domain.ValuationReport, error)
	// ListRevaluations returns only the revaluation entries dated within period.
	ListRevaluations(ctx context.Context, period domain.Period) ([]domain.RevaluationEntry, error)
}

// BalanceReaderSvc answers point-in-time balance queries.
type BalanceReaderSvc interface {
	// BalanceAsOf returns the balance of the named money account after all activity on asOf.
	BalanceAsOf(ctx context.Context, accountName string, asOf time.Time) (decimal.Decimal, error)
}

// ValuationSvcFacade combines all valuation operations.
type ValuationSvcFacade interface {
	ValuationReaderSvc
	BalanceReaderSvc
}
