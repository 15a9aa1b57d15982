package services_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/money_valuation/internal/adapters/memory"
	"github.com/SscSPs/money_valuation/internal/apperrors"
	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/SscSPs/money_valuation/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T, f *ledgerFixture) *services.ExchangeRateResolver {
	t.Helper()
	vc, err := services.NewValuationContext(f.snapshot.Currencies)
	require.NoError(t, err)
	r, err := services.NewExchangeRateResolver(vc, f.snapshot.ExchangeRates, memory.NewLedgerStore(f.snapshot))
	require.NoError(t, err)
	return r
}

func TestNewValuationContext(t *testing.T) {
	gbp := uuid.New()

	vc, err := services.NewValuationContext([]domain.Currency{{CurrencyID: gbp, IsBase: true}, {CurrencyID: uuid.New()}})
	require.NoError(t, err)
	assert.Equal(t, gbp, vc.BaseCurrency())
	assert.Equal(t, gbp, vc.Resolve(nil))

	_, err = services.NewValuationContext([]domain.Currency{{CurrencyID: uuid.New()}})
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)

	_, err = services.NewValuationContext([]domain.Currency{{CurrencyID: uuid.New(), IsBase: true}, {CurrencyID: uuid.New(), IsBase: true}})
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestExchangeRateResolver_RateAsOf(t *testing.T) {
	f := newLedgerFixture()
	r := newResolver(t, f)

	tests := []struct {
		name     string
		asOf     int
		wantRate string
		wantDate int
	}{
		{"on first observation", 1, "1.10", 1},
		{"between observations", 5, "1.10", 1},
		{"on second observation", 10, "1.20", 10},
		{"after last observation", 31, "1.20", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, date, err := r.RateAsOf(f.eur, day(tt.asOf))
			require.NoError(t, err)
			assert.True(t, dec(tt.wantRate).Equal(rate), "rate %s", rate)
			assert.Equal(t, day(tt.wantDate), date)
		})
	}
}

func TestExchangeRateResolver_RateAsOf_BeforeFirstObservation(t *testing.T) {
	f := newLedgerFixture()
	r := newResolver(t, f)

	_, _, err := r.RateAsOf(f.eur, day(1).AddDate(0, 0, -1))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateUnavailable)

	var rateErr *apperrors.RateUnavailableError
	require.True(t, errors.As(err, &rateErr))
	assert.Equal(t, f.eur, rateErr.CurrencyID)
	assert.True(t, apperrors.IsFatal(err))
}

func TestExchangeRateResolver_RateBetween(t *testing.T) {
	f := newLedgerFixture()
	r := newResolver(t, f)

	t.Run("identity", func(t *testing.T) {
		for _, c := range []*uuid.UUID{nil, ptr(f.gbp), ptr(f.eur), ptr(f.usd)} {
			rate, err := r.RateBetween(c, c, day(5))
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(1).Equal(rate))
		}
	})

	t.Run("absent side defaults to base", func(t *testing.T) {
		rate, err := r.RateBetween(nil, ptr(f.gbp), day(5))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1).Equal(rate))

		rate, err = r.RateBetween(ptr(f.eur), nil, day(5))
		require.NoError(t, err)
		assert.True(t, dec("1.10").Equal(rate))
	})

	t.Run("inverse pairs multiply to one", func(t *testing.T) {
		pairs := [][2]*uuid.UUID{
			{ptr(f.eur), ptr(f.gbp)},
			{ptr(f.usd), nil},
			{ptr(f.eur), ptr(f.usd)},
		}
		for _, p := range pairs {
			ab, err := r.RateBetween(p[0], p[1], day(12))
			require.NoError(t, err)
			ba, err := r.RateBetween(p[1], p[0], day(12))
			require.NoError(t, err)
			diff := ab.Mul(ba).Sub(decimal.NewFromInt(1)).Abs()
			assert.True(t, diff.LessThan(dec("0.000000001")), "product off by %s", diff)
		}
	})

	t.Run("triangulates two non-base currencies", func(t *testing.T) {
		rate, err := r.RateBetween(ptr(f.eur), ptr(f.usd), day(5))
		require.NoError(t, err)
		assert.True(t, dec("1.375").Equal(rate), "rate %s", rate)
	})

	t.Run("missing rate fails", func(t *testing.T) {
		_, err := r.RateBetween(ptr(f.eur), ptr(f.gbp), day(1).AddDate(0, 0, -3))
		assert.ErrorIs(t, err, apperrors.ErrRateUnavailable)
	})
}

func TestExchangeRateResolver_RateForAccount(t *testing.T) {
	f := newLedgerFixture()
	r := newResolver(t, f)
	unknown := uuid.New()

	tests := []struct {
		name     string
		account  *uuid.UUID
		currency *uuid.UUID
		want     string
	}{
		{"no account", nil, ptr(f.eur), "1"},
		{"unknown account", &unknown, ptr(f.eur), "1"},
		{"account without currency", ptr(f.current), ptr(f.eur), "1"},
		{"matching currency", ptr(f.euroBank), ptr(f.eur), "1"},
		{"foreign account against base", ptr(f.euroBank), nil, "1.10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := r.RateForAccount(tt.account, tt.currency, day(5))
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(rate), "rate %s", rate)
		})
	}
}

func TestNewExchangeRateResolver_Observations(t *testing.T) {
	f := newLedgerFixture()
	f.snapshot.ExchangeRates = append(f.snapshot.ExchangeRates,
		domain.ExchangeRateObservation{Date: day(10), CurrencyID: f.eur, Rate: dec("1.25")},
		domain.ExchangeRateObservation{Date: day(3), CurrencyID: f.gbp, Rate: dec("2")},
	)
	r := newResolver(t, f)

	obs := r.Observations()
	require.Len(t, obs, 3)
	for i := 1; i < len(obs); i++ {
		assert.False(t, obs[i].Date.Before(obs[i-1].Date))
	}

	rate, _, err := r.RateAsOf(f.eur, day(10))
	require.NoError(t, err)
	assert.True(t, dec("1.25").Equal(rate), "later same-day observation wins")

	rate, _, err = r.RateAsOf(f.gbp, day(3))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(rate), "base currency observations are ignored")
}

func TestNewExchangeRateResolver_RejectsNonPositiveRate(t *testing.T) {
	f := newLedgerFixture()
	f.snapshot.ExchangeRates = append(f.snapshot.ExchangeRates,
		domain.ExchangeRateObservation{Date: day(4), CurrencyID: f.eur, Rate: decimal.Zero})

	vc, err := services.NewValuationContext(f.snapshot.Currencies)
	require.NoError(t, err)
	_, err = services.NewExchangeRateResolver(vc, f.snapshot.ExchangeRates, memory.NewLedgerStore(f.snapshot))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
