package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_valuation/internal/apperrors"
	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/SscSPs/money_valuation/internal/core/ports"
	"github.com/SscSPs/money_valuation/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DecomposeRequest describes one tax-inclusive native amount to be valued.
type DecomposeRequest struct {
	TaxCodeID         *uuid.UUID
	AccountID         *uuid.UUID // Money account the amount posted through
	CurrencyID        *uuid.UUID // Currency of Amount; nil means base
	TransactionDate   time.Time
	InvoiceDate       *time.Time // Nil means TransactionDate
	InvoiceCurrencyID *uuid.UUID // Nil means CurrencyID
	Amount            decimal.Decimal
	Negate            bool
}

// TaxDecomposer splits gross amounts into net and tax and re-expresses them in the
// account currency, in base at the transaction date and in base at the invoice date.
type TaxDecomposer struct {
	vc       ValuationContext
	resolver *ExchangeRateResolver
	taxCodes ports.TaxCodeLookup
}

// NewTaxDecomposer creates a TaxDecomposer.
func NewTaxDecomposer(vc ValuationContext, resolver *ExchangeRateResolver, taxCodes ports.TaxCodeLookup) *TaxDecomposer {
	return &TaxDecomposer{vc: vc, resolver: resolver, taxCodes: taxCodes}
}

// TaxMultiplier returns 1 + sum(component rates)/100 for taxCodeID, or 1 without a tax code.
func (d *TaxDecomposer) TaxMultiplier(taxCodeID *uuid.UUID) (decimal.Decimal, error) {
	if taxCodeID == nil {
		return one, nil
	}
	components, ok := d.taxCodes.LookupTaxComponents(*taxCodeID)
	if !ok {
		return decimal.Zero, apperrors.NewReferenceNotFound("tax code", *taxCodeID)
	}
	return domain.TaxMultiplier(components), nil
}

// Decompose values req.Amount three ways. Rounding happens after every conversion and
// split, never before; tax is the rounded residual of gross minus net so that
// net + tax never drifts from the converted gross by more than a cent.
func (d *TaxDecomposer) Decompose(req DecomposeRequest) (domain.ValuedAmounts, error) {
	multiplier, err := d.TaxMultiplier(req.TaxCodeID)
	if err != nil {
		return domain.ValuedAmounts{}, err
	}

	base := d.vc.BaseCurrency()

	rateAccount, err := d.resolver.RateForAccount(req.AccountID, req.CurrencyID, req.TransactionDate)
	if err != nil {
		return domain.ValuedAmounts{}, err
	}
	rateBase, err := d.resolver.RateBetween(req.CurrencyID, &base, req.TransactionDate)
	if err != nil {
		return domain.ValuedAmounts{}, err
	}

	invoiceDate := req.TransactionDate
	if req.InvoiceDate != nil {
		invoiceDate = *req.InvoiceDate
	}
	invoiceCurrency := req.InvoiceCurrencyID
	if invoiceCurrency == nil {
		invoiceCurrency = req.CurrencyID
	}

	// Native -> invoice currency at the transaction date, then back to native using the
	// same pair's rate at the invoice date.
	invoiceRateAtTransaction, err := d.resolver.RateBetween(req.CurrencyID, invoiceCurrency, req.TransactionDate)
	if err != nil {
		return domain.ValuedAmounts{}, err
	}
	invoiceRateAtIssue, err := d.resolver.RateBetween(req.CurrencyID, invoiceCurrency, invoiceDate)
	if err != nil {
		return domain.ValuedAmounts{}, err
	}
	amountAtInvoice := accounting.RoundMoney(req.Amount.Div(invoiceRateAtTransaction).Mul(invoiceRateAtIssue))

	rateBaseAtInvoice, err := d.resolver.RateBetween(req.CurrencyID, &base, invoiceDate)
	if err != nil {
		return domain.ValuedAmounts{}, err
	}

	amounts := domain.ValuedAmounts{
		Account:           split(req.Amount, multiplier, rateAccount),
		Base:              split(req.Amount, multiplier, rateBase),
		BaseAtInvoiceDate: split(amountAtInvoice, multiplier, rateBaseAtInvoice),
	}
	if req.Negate {
		amounts = amounts.Neg()
	}
	return amounts, nil
}

func split(gross, multiplier, rate decimal.Decimal) domain.Valuation {
	net := accounting.RoundMoney(gross.Div(multiplier).Div(rate))
	tax := accounting.RoundMoney(gross.Div(rate).Sub(net))
	return domain.Valuation{Net: net, Tax: tax}
}

// JournalEntryTaxPolicy selects how journal-entry lines, which post through no money
// account, are valued.
type JournalEntryTaxPolicy string

const (
	// ZeroTaxPolicy values the line as an already-base-currency amount with no tax.
	ZeroTaxPolicy JournalEntryTaxPolicy = "zero-tax"
	// ControlAccountTaxPolicy splits the base-currency amount with the line's tax code.
	ControlAccountTaxPolicy JournalEntryTaxPolicy = "control-account"
)

// ParseJournalEntryTaxPolicy validates a policy name.
func ParseJournalEntryTaxPolicy(s string) (JournalEntryTaxPolicy, error) {
	switch p := JournalEntryTaxPolicy(s); p {
	case ZeroTaxPolicy, ControlAccountTaxPolicy:
		return p, nil
	case "":
		return ZeroTaxPolicy, nil
	default:
		return "", fmt.Errorf("%w: unknown journal entry tax policy '%s'", apperrors.ErrValidation, s)
	}
}

// InternalEntry values a journal-entry line that is not tied to a bank or cash account.
// The amount is credit - debit, so money leaving the business is negative as it is for
// payments. All three valuations are identical because the amount is already in base.
// taxCodeID is only consulted under ControlAccountTaxPolicy.
func (d *TaxDecomposer) InternalEntry(line domain.TransactionLine, taxCodeID *uuid.UUID, policy JournalEntryTaxPolicy) (domain.ValuedAmounts, error) {
	gross := line.Credit.Sub(line.Debit)

	v := domain.Valuation{Net: accounting.RoundMoney(gross), Tax: decimal.Zero}
	if policy == ControlAccountTaxPolicy && taxCodeID != nil {
		multiplier, err := d.TaxMultiplier(taxCodeID)
		if err != nil {
			return domain.ValuedAmounts{}, err
		}
		v = split(gross, multiplier, one)
	}
	return domain.ValuedAmounts{Account: v, Base: v, BaseAtInvoiceDate: v}, nil
}
