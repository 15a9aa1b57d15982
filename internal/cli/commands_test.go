package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/SscSPs/money_valuation/internal/cli"
	"github.com/SscSPs/money_valuation/internal/core/domain"
	portssvc "github.com/SscSPs/money_valuation/internal/core/ports/services"
	"github.com/SscSPs/money_valuation/internal/dto"
	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockValuationService struct {
	mock.Mock
}

func (m *mockValuationService) RunValuation(ctx context.Context, period domain.Period) (*domain.ValuationReport, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValuationReport), args.Error(1)
}

func (m *mockValuationService) ListRevaluations(ctx context.Context, period domain.Period) ([]domain.RevaluationEntry, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RevaluationEntry), args.Error(1)
}

func (m *mockValuationService) BalanceAsOf(ctx context.Context, accountName string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountName, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.ValuationSvcFacade = (*mockValuationService)(nil)

func date(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func january() interface{} {
	return mock.MatchedBy(func(p domain.Period) bool {
		return p.From.Equal(date(1)) && p.To.Equal(date(31))
	})
}

func run(t *testing.T, svc portssvc.ValuationSvcFacade, args ...string) (string, *cli.Commands, error) {
	t.Helper()
	var commands cli.Commands
	parser, err := kong.New(&commands, kong.Name("valuation"), kong.Exit(func(int) {}), kong.Bind(&commands.Globals))
	require.NoError(t, err)

	ctx, err := parser.Parse(append([]string{"--database-url", "postgres://localhost/test"}, args...))
	if err != nil {
		return "", &commands, err
	}

	var out bytes.Buffer
	ctx.BindTo(svc, (*portssvc.ValuationSvcFacade)(nil))
	ctx.BindTo(&out, (*io.Writer)(nil))
	err = ctx.Run()
	return out.String(), &commands, err
}

func TestRunCmd(t *testing.T) {
	svc := new(mockValuationService)
	report := &domain.ValuationReport{
		Period:         domain.Period{From: date(1), To: date(31)},
		BaseCurrencyID: uuid.New(),
		TotalNetBase:   decimal.RequireFromString("61.67"),
		TotalTaxBase:   decimal.RequireFromString("-1.67"),
	}
	svc.On("RunValuation", mock.Anything, january()).Return(report, nil).Once()

	out, commands, err := run(t, svc, "run", "--from", "2024-01-01", "--to", "2024-01-31")
	require.NoError(t, err)
	svc.AssertExpectations(t)

	assert.Equal(t, "zero-tax", commands.JournalTaxPolicy)
	assert.Equal(t, time.Minute, commands.Timeout)

	var resp dto.ValuationReportResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "2024-01-01", resp.From)
	assert.True(t, decimal.RequireFromString("61.67").Equal(resp.TotalNetBase))
	assert.Empty(t, resp.Lines)
}

func TestRevaluationsCmd(t *testing.T) {
	svc := new(mockValuationService)
	svc.On("ListRevaluations", mock.Anything, january()).Return([]domain.RevaluationEntry{{
		Date:         date(10),
		CurrencyCode: "EUR",
		Amount:       decimal.RequireFromString("100"),
	}}, nil).Once()

	out, _, err := run(t, svc, "revaluations", "--from", "2024-01-01", "--to", "2024-01-31")
	require.NoError(t, err)

	var resp dto.ListRevaluationsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Revaluations, 1)
	assert.Equal(t, "2024-01-10", resp.Revaluations[0].Date)
}

func TestBalanceCmd(t *testing.T) {
	svc := new(mockValuationService)
	svc.On("BalanceAsOf", mock.Anything, "Petty Cash", date(15)).Return(decimal.RequireFromString("70"), nil).Once()

	out, _, err := run(t, svc, "balance", "Petty Cash", "--as-of", "2024-01-15")
	require.NoError(t, err)

	var resp dto.BalanceResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Petty Cash", resp.AccountName)
	assert.True(t, decimal.RequireFromString("70").Equal(resp.Balance))
}

func TestCommandErrors(t *testing.T) {
	svc := new(mockValuationService)
	loadErr := errors.New("connection refused")
	svc.On("RunValuation", mock.Anything, january()).Return(nil, loadErr).Once()

	_, _, err := run(t, svc, "run", "--from", "2024-01-01", "--to", "2024-01-31")
	assert.ErrorIs(t, err, loadErr)

	_, _, err = run(t, svc, "run", "--from", "01/01/2024", "--to", "2024-01-31")
	assert.Error(t, err, "dates must be YYYY-MM-DD")

	_, _, err = run(t, svc, "run", "--from", "2024-01-01", "--to", "2024-01-31", "--journal-tax-policy", "proportional")
	assert.Error(t, err)
}
