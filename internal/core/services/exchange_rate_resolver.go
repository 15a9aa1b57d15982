package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/money_valuation/internal/apperrors"
	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/SscSPs/money_valuation/internal/core/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

type ratePoint struct {
	date time.Time
	rate decimal.Decimal
}

// ExchangeRateResolver answers as-of rate queries over a base-relative rate series.
// Every stored rate is the value of one unit of a non-base currency in the base currency.
type ExchangeRateResolver struct {
	vc       ValuationContext
	accounts ports.AccountLookup
	series   map[uuid.UUID][]ratePoint // ascending, one point per date
	ordered  []domain.ExchangeRateObservation
}

// NewExchangeRateResolver indexes observations per currency. When the same currency is
// observed twice on one date, the later observation wins. Observations of the base
// currency itself are ignored.
func NewExchangeRateResolver(vc ValuationContext, observations []domain.ExchangeRateObservation, accounts ports.AccountLookup) (*ExchangeRateResolver, error) {
	type key struct {
		currency uuid.UUID
		date     time.Time
	}
	latest := make(map[key]int, len(observations))
	kept := make([]domain.ExchangeRateObservation, 0, len(observations))

	for _, obs := range observations {
		if obs.CurrencyID == vc.BaseCurrency() {
			continue
		}
		if !obs.Rate.IsPositive() {
			return nil, fmt.Errorf("%w: exchange rate for currency %s on %s must be positive, got %s",
				apperrors.ErrValidation, obs.CurrencyID, obs.Date.Format("2006-01-02"), obs.Rate.String())
		}
		obs.Date = dayOf(obs.Date)
		k := key{currency: obs.CurrencyID, date: obs.Date}
		if i, ok := latest[k]; ok {
			kept[i] = obs
			continue
		}
		latest[k] = len(kept)
		kept = append(kept, obs)
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Date.Before(kept[j].Date) })

	series := make(map[uuid.UUID][]ratePoint)
	for _, obs := range kept {
		series[obs.CurrencyID] = append(series[obs.CurrencyID], ratePoint{date: obs.Date, rate: obs.Rate})
	}

	return &ExchangeRateResolver{
		vc:       vc,
		accounts: accounts,
		series:   series,
		ordered:  kept,
	}, nil
}

// Observations returns the de-duplicated observations in ascending date order;
// same-date observations keep their input order.
func (r *ExchangeRateResolver) Observations() []domain.ExchangeRateObservation {
	out := make([]domain.ExchangeRateObservation, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// RateAsOf returns the latest rate of currencyID published on or before asOf, together
// with its publication date. The base currency always has rate 1.
func (r *ExchangeRateResolver) RateAsOf(currencyID uuid.UUID, asOf time.Time) (decimal.Decimal, time.Time, error) {
	asOf = dayOf(asOf)
	if currencyID == r.vc.BaseCurrency() {
		return one, asOf, nil
	}
	points := r.series[currencyID]
	i := sort.Search(len(points), func(i int) bool {
		return points[i].date.After(asOf)
	})
	if i == 0 {
		return decimal.Zero, time.Time{}, &apperrors.RateUnavailableError{CurrencyID: currencyID, AsOf: asOf}
	}
	p := points[i-1]
	return p.rate, p.date, nil
}

// RateBetween returns the rate for the pair (from, to) on asOf. Absent currencies
// default to the base currency. Identical currencies give 1. A pair involving the
// base currency is looked up with the non-base currency as key: to == base uses
// from's rate directly and from == base inverts to's rate. Two non-base currencies
// are triangulated through the base currency.
func (r *ExchangeRateResolver) RateBetween(from, to *uuid.UUID, asOf time.Time) (decimal.Decimal, error) {
	f := r.vc.Resolve(from)
	t := r.vc.Resolve(to)
	base := r.vc.BaseCurrency()

	switch {
	case f == t:
		return one, nil
	case t == base:
		rate, _, err := r.RateAsOf(f, asOf)
		return rate, err
	case f == base:
		rate, _, err := r.RateAsOf(t, asOf)
		if err != nil {
			return decimal.Zero, err
		}
		return one.Div(rate), nil
	default:
		fromRate, _, err := r.RateAsOf(f, asOf)
		if err != nil {
			return decimal.Zero, err
		}
		toRate, _, err := r.RateAsOf(t, asOf)
		if err != nil {
			return decimal.Zero, err
		}
		return fromRate.Div(toRate), nil
	}
}

// RateForAccount resolves the currency of accountID against transactionCurrency.
// It returns 1 when the account is absent, unknown, has no currency of its own, or
// shares the transaction currency.
func (r *ExchangeRateResolver) RateForAccount(accountID *uuid.UUID, transactionCurrency *uuid.UUID, asOf time.Time) (decimal.Decimal, error) {
	if accountID == nil {
		return one, nil
	}
	account, ok := r.accounts.LookupAccount(*accountID)
	if !ok || account.CurrencyID == nil {
		return one, nil
	}
	if *account.CurrencyID == r.vc.Resolve(transactionCurrency) {
		return one, nil
	}
	return r.RateBetween(account.CurrencyID, transactionCurrency, asOf)
}

// dayOf drops the time of day so dates compare by calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
