package services

import (
	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/SscSPs/money_valuation/internal/core/ports"
	"github.com/SscSPs/money_valuation/internal/utils/accounting"
	"github.com/google/uuid"
)

// StaticCategorizer labels general ledger accounts by name and everything else from a
// static chart-of-accounts table keyed by account ID.
type StaticCategorizer struct {
	accounts ports.AccountLookup
	chart    map[uuid.UUID]string
}

var _ ports.Categorizer = (*StaticCategorizer)(nil)

// NewStaticCategorizer creates a StaticCategorizer. Chart labels may be written in
// CamelCase; they are split into words.
func NewStaticCategorizer(accounts ports.AccountLookup, chart map[uuid.UUID]string) *StaticCategorizer {
	labels := make(map[uuid.UUID]string, len(chart))
	for id, label := range chart {
		labels[id] = accounting.SplitByCasing(label)
	}
	return &StaticCategorizer{accounts: accounts, chart: labels}
}

// Category returns the account name for general ledger accounts, then the chart label.
func (c *StaticCategorizer) Category(accountID uuid.UUID) (string, bool) {
	if a, ok := c.accounts.LookupAccount(accountID); ok && a.Kind == domain.GeneralLedgerAccount {
		return a.Name, true
	}
	label, ok := c.chart[accountID]
	return label, ok
}
