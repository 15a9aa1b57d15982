package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_valuation/internal/apperrors"
	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/SscSPs/money_valuation/internal/core/ports"
	portsrepo "github.com/SscSPs/money_valuation/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_valuation/internal/core/ports/services"
	"github.com/SscSPs/money_valuation/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// valuationService implements the ValuationSvcFacade interface
type valuationService struct {
	BaseService
	loader  portsrepo.LedgerLoader
	index   ports.LedgerIndexer
	chart   map[uuid.UUID]string
	policy  JournalEntryTaxPolicy
	metrics *metrics.Collectors
}

// ValuationServiceOption is a functional option for configuring the valuation service
type ValuationServiceOption func(*valuationService)

// WithChartOfAccounts sets the account ID to category label table.
func WithChartOfAccounts(chart map[uuid.UUID]string) ValuationServiceOption {
	return func(s *valuationService) {
		s.chart = chart
	}
}

// WithJournalEntryTaxPolicy sets how journal-entry lines are valued.
func WithJournalEntryTaxPolicy(policy JournalEntryTaxPolicy) ValuationServiceOption {
	return func(s *valuationService) {
		s.policy = policy
	}
}

// WithMetrics records run outcomes on the given collectors.
func WithMetrics(c *metrics.Collectors) ValuationServiceOption {
	return func(s *valuationService) {
		s.metrics = c
	}
}

// NewValuationService creates a new valuation service with the provided options.
// index builds the lookups over each loaded snapshot.
func NewValuationService(loader portsrepo.LedgerLoader, index ports.LedgerIndexer, options ...ValuationServiceOption) portssvc.ValuationSvcFacade {
	svc := &valuationService{
		loader: loader,
		index:  index,
		policy: ZeroTaxPolicy,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure valuationService implements the ValuationSvcFacade interface
var _ portssvc.ValuationSvcFacade = (*valuationService)(nil)

// RunValuation loads the ledger up to period.To and runs every valuation pass.
func (s *valuationService) RunValuation(ctx context.Context, period domain.Period) (*domain.ValuationReport, error) {
	started := time.Now()
	report, err := s.runValuation(ctx, period)
	if err != nil {
		s.metrics.ObserveRun(metrics.OutcomeFailure, time.Since(started), nil)
		return nil, err
	}
	s.metrics.ObserveRun(metrics.OutcomeSuccess, time.Since(started), report)
	return report, nil
}

func (s *valuationService) runValuation(ctx context.Context, period domain.Period) (*domain.ValuationReport, error) {
	engine, period, err := s.loadEngine(ctx, period)
	if err != nil {
		return nil, err
	}

	lines, skipped, err := engine.ValueLines(period)
	if err != nil {
		s.LogError(ctx, err, "Failed to value transaction lines", periodAttrs(period)...)
		return nil, err
	}
	for _, sk := range skipped {
		s.LogDebug(ctx, "Skipped transaction line",
			slog.String("transaction_id", sk.TransactionID.String()),
			slog.String("line_id", sk.LineID.String()),
			slog.String("reason", sk.Reason),
			slog.String("detail", sk.Detail))
	}
	s.LogInfo(ctx, "Valued transaction lines", slog.Int("line_count", len(lines)), slog.Int("skipped_count", len(skipped)))

	if err := engine.ReplayBalances(period.To); err != nil {
		s.LogError(ctx, err, "Failed to replay balances", periodAttrs(period)...)
		return nil, err
	}
	s.LogInfo(ctx, "Balances replayed", slog.String("until", period.To.Format(time.DateOnly)))

	revaluations, err := engine.Revaluations(period)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute revaluations", periodAttrs(period)...)
		return nil, err
	}
	s.LogInfo(ctx, "Revaluations computed", slog.Int("revaluation_count", len(revaluations)))

	report := engine.Aggregate(period, lines, revaluations)
	report.Skipped = skipped

	s.LogInfo(ctx, "Valuation completed",
		append(periodAttrs(period),
			slog.Int("line_count", len(report.Lines)),
			slog.Int("revaluation_count", len(report.Revaluations)),
			slog.Int("skipped_count", len(report.Skipped)),
			slog.String("total_net_base", report.TotalNetBase.String()))...)
	return report, nil
}

// ListRevaluations replays balances through period.To and returns the revaluation
// entries dated within period.
func (s *valuationService) ListRevaluations(ctx context.Context, period domain.Period) ([]domain.RevaluationEntry, error) {
	engine, period, err := s.loadEngine(ctx, period)
	if err != nil {
		return nil, err
	}
	if err := engine.ReplayBalances(period.To); err != nil {
		s.LogError(ctx, err, "Failed to replay balances", periodAttrs(period)...)
		return nil, err
	}
	entries, err := engine.Revaluations(period)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute revaluations", periodAttrs(period)...)
		return nil, err
	}
	s.LogInfo(ctx, "Revaluations listed", append(periodAttrs(period), slog.Int("count", len(entries)))...)
	return entries, nil
}

// BalanceAsOf returns the balance of a money account after all activity on asOf.
func (s *valuationService) BalanceAsOf(ctx context.Context, accountName string, asOf time.Time) (decimal.Decimal, error) {
	if accountName == "" {
		return decimal.Zero, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	asOf = dayOf(asOf)
	engine, _, err := s.loadEngine(ctx, domain.Period{From: asOf, To: asOf})
	if err != nil {
		return decimal.Zero, err
	}
	if err := engine.ReplayBalances(asOf); err != nil {
		s.LogError(ctx, err, "Failed to replay balances", slog.String("asOf", asOf.Format(time.DateOnly)))
		return decimal.Zero, err
	}
	balance, err := engine.BalanceAsOf(accountName, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to read balance",
			slog.String("account_name", accountName),
			slog.String("asOf", asOf.Format(time.DateOnly)))
		return decimal.Zero, err
	}
	return balance, nil
}

// loadEngine validates period, normalizes it to whole days and builds an engine over
// the ledger loaded up to its end.
func (s *valuationService) loadEngine(ctx context.Context, period domain.Period) (*Engine, domain.Period, error) {
	if period.From.IsZero() || period.To.IsZero() {
		return nil, period, fmt.Errorf("%w: period start and end are required", apperrors.ErrValidation)
	}
	period = domain.Period{From: dayOf(period.From), To: dayOf(period.To)}
	if period.From.After(period.To) {
		return nil, period, fmt.Errorf("%w: period start %s is after end %s", apperrors.ErrValidation,
			period.From.Format(time.DateOnly), period.To.Format(time.DateOnly))
	}

	snapshot, err := s.loader.LoadLedger(ctx, period.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger", periodAttrs(period)...)
		return nil, period, fmt.Errorf("failed to load ledger: %w", err)
	}

	engine, err := NewEngine(snapshot, s.index(snapshot), EngineOptions{ChartOfAccounts: s.chart, JournalPolicy: s.policy})
	if err != nil {
		s.LogError(ctx, err, "Failed to build valuation engine")
		return nil, period, err
	}
	return engine, period, nil
}

func periodAttrs(period domain.Period) []any {
	return []any{
		slog.String("from", period.From.Format(time.DateOnly)),
		slog.String("to", period.To.Format(time.DateOnly)),
	}
}
