package services

import (
	"sort"
	"time"

	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NamedDelta is a balance change addressed by account name.
type NamedDelta struct {
	AccountName string
	Date        time.Time
	Amount      decimal.Decimal
}

// BalanceLedger keeps, per account name, the balance after each day with activity.
//
// The ledger is order sensitive: ApplyDelta reads the balance in effect on its date
// and writes a snapshot there without touching later snapshots. Deltas must therefore
// be applied in non-decreasing date order before any as-of query is trusted.
type BalanceLedger struct {
	starting  map[string]decimal.Decimal
	snapshots map[string][]domain.BalanceSnapshot // ascending by date
}

// NewBalanceLedger creates an empty ledger.
func NewBalanceLedger() *BalanceLedger {
	return &BalanceLedger{
		starting:  make(map[string]decimal.Decimal),
		snapshots: make(map[string][]domain.BalanceSnapshot),
	}
}

// Open registers an account with the balance it has at the beginning of time.
func (l *BalanceLedger) Open(accountName string, startingBalance decimal.Decimal) {
	l.starting[accountName] = startingBalance
}

// Reset discards every snapshot, keeping the starting balances.
func (l *BalanceLedger) Reset() {
	l.snapshots = make(map[string][]domain.BalanceSnapshot)
}

// ApplyDelta adds amount to the balance in effect on date and stores the result as the
// snapshot for date. Same-day deltas accumulate into one snapshot.
func (l *BalanceLedger) ApplyDelta(accountName string, date time.Time, amount decimal.Decimal) {
	date = dayOf(date)
	snaps := l.snapshots[accountName]
	i := sort.Search(len(snaps), func(i int) bool {
		return snaps[i].Date.After(date)
	})
	if i > 0 && snaps[i-1].Date.Equal(date) {
		snaps[i-1].Balance = snaps[i-1].Balance.Add(amount)
		return
	}

	balance := l.starting[accountName]
	if i > 0 {
		balance = snaps[i-1].Balance
	}
	snap := domain.BalanceSnapshot{AccountName: accountName, Date: date, Balance: balance.Add(amount)}

	snaps = append(snaps, domain.BalanceSnapshot{})
	copy(snaps[i+1:], snaps[i:])
	snaps[i] = snap
	l.snapshots[accountName] = snaps
}

// BalanceAsOf returns the latest snapshot dated on or before date, or the starting balance.
func (l *BalanceLedger) BalanceAsOf(accountName string, date time.Time) decimal.Decimal {
	date = dayOf(date)
	snaps := l.snapshots[accountName]
	i := sort.Search(len(snaps), func(i int) bool {
		return snaps[i].Date.After(date)
	})
	if i == 0 {
		return l.starting[accountName]
	}
	return snaps[i-1].Balance
}

// BalanceBefore returns the latest snapshot dated strictly before date, or the starting balance.
func (l *BalanceLedger) BalanceBefore(accountName string, date time.Time) decimal.Decimal {
	return l.BalanceAsOf(accountName, dayOf(date).AddDate(0, 0, -1))
}

// Snapshots returns a copy of the snapshots of an account in date order.
func (l *BalanceLedger) Snapshots(accountName string) []domain.BalanceSnapshot {
	snaps := l.snapshots[accountName]
	out := make([]domain.BalanceSnapshot, len(snaps))
	copy(out, snaps)
	return out
}

// Knows reports whether the account was opened or has received a delta.
func (l *BalanceLedger) Knows(accountName string) bool {
	if _, ok := l.starting[accountName]; ok {
		return true
	}
	_, ok := l.snapshots[accountName]
	return ok
}

// Replay sorts deltas by date, keeping input order for ties, and applies them.
func (l *BalanceLedger) Replay(deltas []NamedDelta) {
	ordered := make([]NamedDelta, len(deltas))
	copy(ordered, deltas)
	sort.SliceStable(ordered, func(i, j int) bool {
		return dayOf(ordered[i].Date).Before(dayOf(ordered[j].Date))
	})
	for _, d := range ordered {
		l.ApplyDelta(d.AccountName, d.Date, d.Amount)
	}
}
