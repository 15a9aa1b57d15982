package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_valuation/internal/apperrors"
	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PeriodQuery binds the inclusive date range of a valuation request.
type PeriodQuery struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// ToPeriod parses the query into a domain.Period.
func (q PeriodQuery) ToPeriod() (domain.Period, error) {
	from, err := time.Parse(time.DateOnly, q.From)
	if err != nil {
		return domain.Period{}, fmt.Errorf("%w: invalid from date '%s'", apperrors.ErrValidation, q.From)
	}
	to, err := time.Parse(time.DateOnly, q.To)
	if err != nil {
		return domain.Period{}, fmt.Errorf("%w: invalid to date '%s'", apperrors.ErrValidation, q.To)
	}
	if from.After(to) {
		return domain.Period{}, fmt.Errorf("%w: from date must not be after to date", apperrors.ErrValidation)
	}
	return domain.Period{From: from, To: to}, nil
}

// BalanceQuery binds a point-in-time balance request.
type BalanceQuery struct {
	Account string `form:"account" binding:"required"`
	AsOf    string `form:"asOf" binding:"required,datetime=2006-01-02"`
}

// AsOfDate parses AsOf.
func (q BalanceQuery) AsOfDate() (time.Time, error) {
	asOf, err := time.Parse(time.DateOnly, q.AsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid asOf date '%s'", apperrors.ErrValidation, q.AsOf)
	}
	return asOf, nil
}

// ValuedLineResponse is one valued line of a report. Amounts are tax-exclusive net and tax
// portions in the money account currency, in base at the transaction date, and in base at
// the invoice date.
type ValuedLineResponse struct {
	TransactionID  string          `json:"transactionID,omitempty"`
	Kind           string          `json:"kind,omitempty"`
	Date           string          `json:"date"`
	AccountName    string          `json:"accountName,omitempty"`
	IsCashAccount  bool            `json:"isCashAccount"`
	CurrencyID     *string         `json:"currencyID,omitempty"`
	Contact        string          `json:"contact"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	AccountNet     decimal.Decimal `json:"accountNet"`
	AccountTax     decimal.Decimal `json:"accountTax"`
	BaseNet        decimal.Decimal `json:"baseNet"`
	BaseTax        decimal.Decimal `json:"baseTax"`
	InvoiceDateNet decimal.Decimal `json:"invoiceDateNet"`
	InvoiceDateTax decimal.Decimal `json:"invoiceDateTax"`
}

// RevaluationResponse is a single unrealized gain or loss entry.
type RevaluationResponse struct {
	Date          string          `json:"date"`
	CurrencyID    string          `json:"currencyID"`
	CurrencyCode  string          `json:"currencyCode"`
	PreviousRate  decimal.Decimal `json:"previousRate"`
	NewRate       decimal.Decimal `json:"newRate"`
	PreviousValue decimal.Decimal `json:"previousValue"`
	NewValue      decimal.Decimal `json:"newValue"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

// SkippedLineResponse describes a line left out of the report.
type SkippedLineResponse struct {
	TransactionID string `json:"transactionID"`
	LineID        string `json:"lineID"`
	Reason        string `json:"reason"`
	Detail        string `json:"detail"`
}

// CategoryTotalResponse is the base-currency net total of one category.
type CategoryTotalResponse struct {
	Category  string          `json:"category"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// AccountTotalResponse is the gross account-currency total through one money account.
type AccountTotalResponse struct {
	AccountName string          `json:"accountName"`
	Gross       decimal.Decimal `json:"gross"`
}

// ValuationReportResponse defines the data returned for a valuation run.
type ValuationReportResponse struct {
	From           string                  `json:"from"`
	To             string                  `json:"to"`
	BaseCurrencyID string                  `json:"baseCurrencyID"`
	Lines          []ValuedLineResponse    `json:"lines"`
	Revaluations   []RevaluationResponse   `json:"revaluations"`
	Skipped        []SkippedLineResponse   `json:"skipped"`
	CategoryTotals []CategoryTotalResponse `json:"categoryTotals"`
	AccountTotals  []AccountTotalResponse  `json:"accountTotals"`
	TotalNetBase   decimal.Decimal         `json:"totalNetBase"`
	TotalTaxBase   decimal.Decimal         `json:"totalTaxBase"`
}

// ListRevaluationsResponse wraps the revaluations of a period.
type ListRevaluationsResponse struct {
	From         string                `json:"from"`
	To           string                `json:"to"`
	Revaluations []RevaluationResponse `json:"revaluations"`
}

// BalanceResponse defines the data returned for a balance query.
type BalanceResponse struct {
	AccountName string          `json:"accountName"`
	AsOf        string          `json:"asOf"`
	Balance     decimal.Decimal `json:"balance"`
}

// ToValuedLineResponse converts a domain.ValuedLine to its DTO.
func ToValuedLineResponse(l domain.ValuedLine) ValuedLineResponse {
	resp := ValuedLineResponse{
		Kind:           string(l.Kind),
		Date:           l.Date.Format(time.DateOnly),
		AccountName:    l.AccountName,
		IsCashAccount:  l.IsCashAccount,
		Contact:        l.Contact,
		Description:    l.Description,
		Category:       l.Category,
		AccountNet:     l.Amounts.Account.Net,
		AccountTax:     l.Amounts.Account.Tax,
		BaseNet:        l.Amounts.Base.Net,
		BaseTax:        l.Amounts.Base.Tax,
		InvoiceDateNet: l.Amounts.BaseAtInvoiceDate.Net,
		InvoiceDateTax: l.Amounts.BaseAtInvoiceDate.Tax,
	}
	if l.Kind != "" {
		resp.TransactionID = l.TransactionID.String()
	}
	if l.CurrencyID != nil {
		id := l.CurrencyID.String()
		resp.CurrencyID = &id
	}
	return resp
}

// ToRevaluationResponse converts a domain.RevaluationEntry to its DTO.
func ToRevaluationResponse(e domain.RevaluationEntry) RevaluationResponse {
	return RevaluationResponse{
		Date:          e.Date.Format(time.DateOnly),
		CurrencyID:    e.CurrencyID.String(),
		CurrencyCode:  e.CurrencyCode,
		PreviousRate:  e.PreviousRate,
		NewRate:       e.NewRate,
		PreviousValue: e.PreviousValue,
		NewValue:      e.NewValue,
		Amount:        e.Amount,
		Description:   e.Description,
	}
}

// ToListRevaluationResponse converts a slice of entries, never returning nil.
func ToListRevaluationResponse(entries []domain.RevaluationEntry) []RevaluationResponse {
	res := make([]RevaluationResponse, len(entries))
	for i, e := range entries {
		res[i] = ToRevaluationResponse(e)
	}
	return res
}

// ToValuationReportResponse converts a domain.ValuationReport to its DTO.
func ToValuationReportResponse(r *domain.ValuationReport) ValuationReportResponse {
	resp := ValuationReportResponse{
		From:           r.Period.From.Format(time.DateOnly),
		To:             r.Period.To.Format(time.DateOnly),
		BaseCurrencyID: r.BaseCurrencyID.String(),
		Lines:          make([]ValuedLineResponse, len(r.Lines)),
		Revaluations:   ToListRevaluationResponse(r.Revaluations),
		Skipped:        make([]SkippedLineResponse, len(r.Skipped)),
		CategoryTotals: make([]CategoryTotalResponse, len(r.CategoryTotals)),
		AccountTotals:  make([]AccountTotalResponse, len(r.AccountTotals)),
		TotalNetBase:   r.TotalNetBase,
		TotalTaxBase:   r.TotalTaxBase,
	}
	for i, l := range r.Lines {
		resp.Lines[i] = ToValuedLineResponse(l)
	}
	for i, s := range r.Skipped {
		resp.Skipped[i] = SkippedLineResponse{
			TransactionID: s.TransactionID.String(),
			LineID:        s.LineID.String(),
			Reason:        s.Reason,
			Detail:        s.Detail,
		}
	}
	for i, t := range r.CategoryTotals {
		resp.CategoryTotals[i] = CategoryTotalResponse{Category: t.Category, NetAmount: t.NetAmount}
	}
	for i, t := range r.AccountTotals {
		resp.AccountTotals[i] = AccountTotalResponse{AccountName: t.AccountName, Gross: t.Gross}
	}
	return resp
}
