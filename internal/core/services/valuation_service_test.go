package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/money_valuation/internal/adapters/memory"
	"github.com/SscSPs/money_valuation/internal/apperrors"
	"github.com/SscSPs/money_valuation/internal/core/domain"
	portssvc "github.com/SscSPs/money_valuation/internal/core/ports/services"
	"github.com/SscSPs/money_valuation/internal/core/services"
	"github.com/SscSPs/money_valuation/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerLoader ---
type MockLedgerLoader struct {
	mock.Mock
}

func (m *MockLedgerLoader) LoadLedger(ctx context.Context, until time.Time) (*domain.LedgerSnapshot, error) {
	args := m.Called(ctx, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerSnapshot), args.Error(1)
}

// --- Test Suite ---
type ValuationServiceTestSuite struct {
	suite.Suite
	mockLoader *MockLedgerLoader
	collectors *metrics.Collectors
	fixture    *ledgerFixture
	service    portssvc.ValuationSvcFacade
}

func (suite *ValuationServiceTestSuite) SetupTest() {
	suite.mockLoader = new(MockLedgerLoader)
	suite.collectors = metrics.NewCollectors(prometheus.NewRegistry())
	suite.fixture = newLedgerFixture().withStandardActivity()
	suite.service = services.NewValuationService(suite.mockLoader, memory.Index,
		services.WithMetrics(suite.collectors),
		services.WithJournalEntryTaxPolicy(services.ZeroTaxPolicy),
		services.WithChartOfAccounts(map[uuid.UUID]string{suite.fixture.fixedAssets: "FixedAssets"}),
	)
}

func (suite *ValuationServiceTestSuite) TearDownTest() {
	suite.mockLoader.AssertExpectations(suite.T())
}

func (suite *ValuationServiceTestSuite) TestRunValuation_Success() {
	ctx := context.Background()
	suite.mockLoader.On("LoadLedger", ctx, day(31)).Return(suite.fixture.snapshot, nil).Once()

	// Times within a day are normalized to the calendar day.
	report, err := suite.service.RunValuation(ctx, domain.Period{From: day(1).Add(9 * time.Hour), To: day(31).Add(17 * time.Hour)})

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal(day(1), report.Period.From)
	suite.Equal(day(31), report.Period.To)
	suite.Len(report.Lines, 4)
	suite.Len(report.Revaluations, 1)

	suite.Equal(1.0, testutil.ToFloat64(suite.collectors.Runs.WithLabelValues(metrics.OutcomeSuccess)))
	suite.Equal(3.0, testutil.ToFloat64(suite.collectors.ValuedLines))
	suite.Equal(1.0, testutil.ToFloat64(suite.collectors.RevaluationEntries))
}

func (suite *ValuationServiceTestSuite) TestRunValuation_InvalidPeriod() {
	ctx := context.Background()

	_, err := suite.service.RunValuation(ctx, domain.Period{From: day(10), To: day(9)})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.RunValuation(ctx, domain.Period{To: day(9)})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.Equal(2.0, testutil.ToFloat64(suite.collectors.Runs.WithLabelValues(metrics.OutcomeFailure)))
	suite.mockLoader.AssertNotCalled(suite.T(), "LoadLedger", mock.Anything, mock.Anything)
}

func (suite *ValuationServiceTestSuite) TestRunValuation_LoaderError() {
	ctx := context.Background()
	dbErr := errors.New("connection refused")
	suite.mockLoader.On("LoadLedger", ctx, day(31)).Return(nil, dbErr).Once()

	report, err := suite.service.RunValuation(ctx, january())

	suite.Nil(report)
	suite.ErrorIs(err, dbErr)
	suite.Equal(1.0, testutil.ToFloat64(suite.collectors.Runs.WithLabelValues(metrics.OutcomeFailure)))
}

func (suite *ValuationServiceTestSuite) TestRunValuation_ConfigurationError() {
	ctx := context.Background()
	suite.fixture.snapshot.Currencies[1].IsBase = true
	suite.mockLoader.On("LoadLedger", ctx, day(31)).Return(suite.fixture.snapshot, nil).Once()

	_, err := suite.service.RunValuation(ctx, january())

	suite.ErrorIs(err, apperrors.ErrConfiguration)
	suite.True(apperrors.IsFatal(err))
}

func (suite *ValuationServiceTestSuite) TestListRevaluations() {
	ctx := context.Background()
	suite.mockLoader.On("LoadLedger", ctx, day(31)).Return(suite.fixture.snapshot, nil).Once()
	suite.mockLoader.On("LoadLedger", ctx, day(9)).Return(suite.fixture.snapshot, nil).Once()

	entries, err := suite.service.ListRevaluations(ctx, january())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.True(dec("100").Equal(entries[0].Amount))

	entries, err = suite.service.ListRevaluations(ctx, domain.Period{From: day(1), To: day(9)})
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *ValuationServiceTestSuite) TestBalanceAsOf() {
	ctx := context.Background()
	suite.mockLoader.On("LoadLedger", ctx, day(15)).Return(suite.fixture.snapshot, nil).Once()

	balance, err := suite.service.BalanceAsOf(ctx, "Current Account", day(15).Add(12*time.Hour))

	suite.Require().NoError(err)
	suite.True(dec("360").Equal(balance), "balance %s", balance)
}

func (suite *ValuationServiceTestSuite) TestBalanceAsOf_UnknownAccount() {
	ctx := context.Background()
	suite.mockLoader.On("LoadLedger", ctx, day(15)).Return(suite.fixture.snapshot, nil).Once()

	_, err := suite.service.BalanceAsOf(ctx, "Savings", day(15))

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ValuationServiceTestSuite) TestBalanceAsOf_MissingName() {
	_, err := suite.service.BalanceAsOf(context.Background(), "", day(15))

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestValuationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ValuationServiceTestSuite))
}
