package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/SscSPs/money_valuation/internal/core/ports"
	"github.com/SscSPs/money_valuation/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RevaluationCalculator derives unrealized gain/loss entries from rate changes. It must
// only run after the balance ledger has been fully replayed.
type RevaluationCalculator struct {
	vc         ValuationContext
	resolver   *ExchangeRateResolver
	ledger     *BalanceLedger
	accounts   ports.AccountLookup
	currencies ports.CurrencyLookup
}

// NewRevaluationCalculator creates a RevaluationCalculator.
func NewRevaluationCalculator(vc ValuationContext, resolver *ExchangeRateResolver, ledger *BalanceLedger, accounts ports.AccountLookup, currencies ports.CurrencyLookup) *RevaluationCalculator {
	return &RevaluationCalculator{
		vc:         vc,
		resolver:   resolver,
		ledger:     ledger,
		accounts:   accounts,
		currencies: currencies,
	}
}

// Compute walks every rate observation dated on or before until in ascending date order.
// The first observation of a currency only starts tracking it. Every later observation
// revalues the balances, as of the previous day, of all bank and cash accounts held in
// that currency from the last applied rate to the new one. The summed difference becomes
// one entry; an exactly-zero difference is suppressed.
func (c *RevaluationCalculator) Compute(until time.Time) ([]domain.RevaluationEntry, error) {
	until = dayOf(until)
	byCurrency := c.moneyAccountsByCurrency()
	lastApplied := make(map[uuid.UUID]time.Time)

	var entries []domain.RevaluationEntry
	for _, obs := range c.resolver.Observations() {
		if obs.Date.After(until) {
			break
		}
		previousDate, seen := lastApplied[obs.CurrencyID]
		if !seen {
			lastApplied[obs.CurrencyID] = obs.Date
			continue
		}

		previousRate, _, err := c.resolver.RateAsOf(obs.CurrencyID, previousDate)
		if err != nil {
			return nil, err
		}

		balanceDate := obs.Date.AddDate(0, 0, -1)
		previousValue := decimal.Zero
		newValue := decimal.Zero
		for _, account := range byCurrency[obs.CurrencyID] {
			balance := c.ledger.BalanceAsOf(account.Name, balanceDate)
			previousValue = previousValue.Add(accounting.RoundMoney(balance.Mul(previousRate)))
			newValue = newValue.Add(accounting.RoundMoney(balance.Mul(obs.Rate)))
		}
		lastApplied[obs.CurrencyID] = obs.Date

		amount := newValue.Sub(previousValue)
		if amount.IsZero() {
			continue
		}

		code := c.currencyCode(obs.CurrencyID)
		entries = append(entries, domain.RevaluationEntry{
			Date:          obs.Date,
			CurrencyID:    obs.CurrencyID,
			CurrencyCode:  code,
			PreviousRate:  previousRate,
			NewRate:       obs.Rate,
			PreviousValue: previousValue,
			NewValue:      newValue,
			Amount:        amount,
			Contact:       code,
			Description:   fmt.Sprintf("Revaluation %s %s -> %s", code, previousRate.String(), obs.Rate.String()),
		})
	}
	return entries, nil
}

func (c *RevaluationCalculator) moneyAccountsByCurrency() map[uuid.UUID][]domain.Account {
	out := make(map[uuid.UUID][]domain.Account)
	base := c.vc.BaseCurrency()
	for _, a := range c.accounts.MoneyAccounts() {
		currency := a.CurrencyOr(base)
		if currency == base {
			continue
		}
		out[currency] = append(out[currency], a)
	}
	return out
}

func (c *RevaluationCalculator) currencyCode(id uuid.UUID) string {
	if cur, ok := c.currencies.LookupCurrency(id); ok && cur.Code != "" {
		return cur.Code
	}
	return id.String()
}
