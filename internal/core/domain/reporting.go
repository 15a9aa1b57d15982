package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SkippedLine records a transaction line that was dropped because a reference
// could not be resolved.
type SkippedLine struct {
	TransactionID uuid.UUID `json:"transactionID"`
	LineID        uuid.UUID `json:"lineID"`
	Reason        string    `json:"reason"` // Short, fixed code such as "unresolved_reference"
	Detail        string    `json:"detail"`
}

// Skip reasons.
const (
	SkipUnresolvedReference = "unresolved_reference"
	SkipNoAccount           = "no_account"
)

// CategoryTotal is the sum of base-currency net amounts for a category.
type CategoryTotal struct {
	Category  string          `json:"category"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// AccountTotal is the sum of account-currency gross amounts through a money account.
type AccountTotal struct {
	AccountName string          `json:"accountName"`
	Gross       decimal.Decimal `json:"gross"`
}

// ValuationReport is the output of a valuation run.
type ValuationReport struct {
	Period         Period             `json:"period"`
	BaseCurrencyID uuid.UUID          `json:"baseCurrencyID"`
	Lines          []ValuedLine       `json:"lines"` // Valued lines merged with revaluation lines, date ordered
	Revaluations   []RevaluationEntry `json:"revaluations"`
	Skipped        []SkippedLine      `json:"skipped"`
	CategoryTotals []CategoryTotal    `json:"categoryTotals"` // Sorted by category
	AccountTotals  []AccountTotal     `json:"accountTotals"`  // Sorted by account name
	TotalNetBase   decimal.Decimal    `json:"totalNetBase"`
	TotalTaxBase   decimal.Decimal    `json:"totalTaxBase"`
}
