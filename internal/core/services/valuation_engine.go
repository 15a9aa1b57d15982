package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/money_valuation/internal/apperrors"
	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/SscSPs/money_valuation/internal/core/ports"
	"github.com/SscSPs/money_valuation/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EngineOptions tunes categorization and journal-entry valuation.
type EngineOptions struct {
	ChartOfAccounts map[uuid.UUID]string
	JournalPolicy   JournalEntryTaxPolicy
}

// Engine values one loaded ledger. It is single-use and not safe for concurrent use:
// the passes run strictly in order (value lines, replay balances, revalue, aggregate).
type Engine struct {
	snapshot    *domain.LedgerSnapshot
	store       ports.LedgerLookups
	vc          ValuationContext
	resolver    *ExchangeRateResolver
	decomposer  *TaxDecomposer
	ledger      *BalanceLedger
	categorizer *StaticCategorizer
	policy      JournalEntryTaxPolicy
	replayedTo  *time.Time
}

// NewEngine builds the engine components over snapshot and its lookups. It fails with
// a configuration error when the base currency is missing or ambiguous.
func NewEngine(snapshot *domain.LedgerSnapshot, store ports.LedgerLookups, opts EngineOptions) (*Engine, error) {
	vc, err := NewValuationContext(snapshot.Currencies)
	if err != nil {
		return nil, err
	}
	resolver, err := NewExchangeRateResolver(vc, snapshot.ExchangeRates, store)
	if err != nil {
		return nil, err
	}
	policy := opts.JournalPolicy
	if policy == "" {
		policy = ZeroTaxPolicy
	}
	return &Engine{
		snapshot:    snapshot,
		store:       store,
		vc:          vc,
		resolver:    resolver,
		decomposer:  NewTaxDecomposer(vc, resolver, store),
		ledger:      NewBalanceLedger(),
		categorizer: NewStaticCategorizer(store, opts.ChartOfAccounts),
		policy:      policy,
	}, nil
}

// BaseCurrency returns the base currency of the loaded ledger.
func (e *Engine) BaseCurrency() uuid.UUID {
	return e.vc.BaseCurrency()
}

// Run executes all four passes for period.
func (e *Engine) Run(period domain.Period) (*domain.ValuationReport, error) {
	lines, skipped, err := e.ValueLines(period)
	if err != nil {
		return nil, err
	}
	if err := e.ReplayBalances(period.To); err != nil {
		return nil, err
	}
	revaluations, err := e.Revaluations(period)
	if err != nil {
		return nil, err
	}
	report := e.Aggregate(period, lines, revaluations)
	report.Skipped = skipped
	return report, nil
}

// ValueLines values every receipt, payment and journal-entry line dated within period.
// Lines with unresolved references are skipped and reported; fatal errors abort.
func (e *Engine) ValueLines(period domain.Period) ([]domain.ValuedLine, []domain.SkippedLine, error) {
	var lines []domain.ValuedLine
	var skipped []domain.SkippedLine

	for _, txn := range e.snapshot.Transactions {
		if !period.Contains(dayOf(txn.Date)) {
			continue
		}
		var valued []domain.ValuedLine
		var skips []domain.SkippedLine
		var err error
		switch txn.Kind {
		case domain.Receipt, domain.Payment:
			valued, skips, err = e.valueMoneyTransaction(txn)
		case domain.JournalEntry:
			valued, skips, err = e.valueJournalEntry(txn)
		default:
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		lines = append(lines, valued...)
		skipped = append(skipped, skips...)
	}
	return lines, skipped, nil
}

type moneyAccountDetails struct {
	id       *uuid.UUID
	name     string
	isCash   bool
	currency *uuid.UUID
}

func (e *Engine) valueMoneyTransaction(txn domain.Transaction) ([]domain.ValuedLine, []domain.SkippedLine, error) {
	var details moneyAccountDetails
	if txn.MoneyAccountID != nil {
		account, ok := e.store.LookupAccount(*txn.MoneyAccountID)
		if !ok || !account.IsMoneyAccount() {
			return nil, skipAll(txn, apperrors.NewReferenceNotFound("account", *txn.MoneyAccountID)), nil
		}
		details = moneyAccountDetails{id: txn.MoneyAccountID, name: account.Name, isCash: account.IsCash(), currency: account.CurrencyID}
	}
	negate := txn.Kind == domain.Payment

	var lines []domain.ValuedLine
	var skipped []domain.SkippedLine
	for _, l := range txn.Lines {
		line, err := e.valueMoneyLine(txn, l, details, negate)
		if err != nil {
			if apperrors.IsFatal(err) {
				return nil, nil, err
			}
			if errors.Is(err, apperrors.ErrReferenceNotFound) || errors.Is(err, errNoAccount) {
				skipped = append(skipped, skipLine(txn, l, err))
				continue
			}
			return nil, nil, err
		}
		lines = append(lines, line)
	}
	return lines, skipped, nil
}

var errNoAccount = errors.New("line has no account")

func (e *Engine) valueMoneyLine(txn domain.Transaction, l domain.TransactionLine, details moneyAccountDetails, negate bool) (domain.ValuedLine, error) {
	accountID, taxCodeID, invoice, err := e.resolveLineAccount(l)
	if err != nil {
		return domain.ValuedLine{}, err
	}
	if accountID == nil {
		return domain.ValuedLine{}, errNoAccount
	}

	// The line's own tax code wins over the invoice's; a control account's default wins over both.
	if l.TaxCodeID != nil {
		taxCodeID = l.TaxCodeID
	}
	category, ok := e.categorizer.Category(*accountID)
	if !ok {
		control, found := e.store.LookupAccount(*accountID)
		if !found || control.Kind != domain.ControlAccount {
			return domain.ValuedLine{}, apperrors.NewReferenceNotFound("account", *accountID)
		}
		category = control.Name
		if category == "" {
			category = "Control account"
		}
		if control.DefaultTaxCodeID != nil {
			taxCodeID = control.DefaultTaxCodeID
		}
		// Settlements of control accounts are always reported negated.
		negate = true
	}

	req := DecomposeRequest{
		TaxCodeID:       taxCodeID,
		AccountID:       details.id,
		CurrencyID:      details.currency,
		TransactionDate: dayOf(txn.Date),
		Amount:          l.Amount,
		Negate:          negate,
	}
	if invoice != nil {
		issued := dayOf(invoice.IssueDate)
		req.InvoiceDate = &issued
		if invoice.Kind == domain.SalesInvoice && invoice.CustomerID != nil {
			customer, ok := e.store.LookupCustomer(*invoice.CustomerID)
			if !ok {
				return domain.ValuedLine{}, apperrors.NewReferenceNotFound("customer", *invoice.CustomerID)
			}
			req.InvoiceCurrencyID = customer.CurrencyID
			if req.InvoiceCurrencyID == nil {
				base := e.vc.BaseCurrency()
				req.InvoiceCurrencyID = &base
			}
		}
	}

	amounts, err := e.decomposer.Decompose(req)
	if err != nil {
		return domain.ValuedLine{}, err
	}
	return domain.ValuedLine{
		TransactionID: txn.TransactionID,
		Kind:          txn.Kind,
		Date:          dayOf(txn.Date),
		AccountName:   details.name,
		IsCashAccount: details.isCash,
		CurrencyID:    details.currency,
		Contact:       txn.Contact,
		Description:   txn.Description,
		Category:      category,
		Amounts:       amounts,
	}, nil
}

// resolveLineAccount finds the account and tax code a line is categorized by: a linked
// purchase invoice, then a linked sales invoice, then the line's own account and tax code.
func (e *Engine) resolveLineAccount(l domain.TransactionLine) (*uuid.UUID, *uuid.UUID, *domain.Invoice, error) {
	if l.PurchaseInvoiceID != nil {
		invoice, ok := e.store.LookupInvoice(*l.PurchaseInvoiceID)
		if !ok {
			return nil, nil, nil, apperrors.NewReferenceNotFound("invoice", *l.PurchaseInvoiceID)
		}
		if len(invoice.Lines) != 1 {
			return nil, nil, nil, fmt.Errorf("%w: purchase invoice %s has %d lines, expected exactly one",
				apperrors.ErrInvariantViolation, invoice.InvoiceID, len(invoice.Lines))
		}
		return invoice.Lines[0].AccountID, invoice.Lines[0].TaxCodeID, &invoice, nil
	}

	if l.SalesInvoiceID != nil {
		invoice, ok := e.store.LookupInvoice(*l.SalesInvoiceID)
		if !ok {
			return nil, nil, nil, apperrors.NewReferenceNotFound("invoice", *l.SalesInvoiceID)
		}
		if len(invoice.Lines) == 0 {
			return nil, nil, nil, fmt.Errorf("%w: sales invoice %s has no lines", apperrors.ErrInvariantViolation, invoice.InvoiceID)
		}
		first := invoice.Lines[0]
		for _, il := range invoice.Lines[1:] {
			if !sameID(il.AccountID, first.AccountID) {
				return nil, nil, nil, fmt.Errorf("%w: sales invoice %s has more than one account", apperrors.ErrInvariantViolation, invoice.InvoiceID)
			}
			if !sameID(il.TaxCodeID, first.TaxCodeID) {
				return nil, nil, nil, fmt.Errorf("%w: sales invoice %s has more than one tax code", apperrors.ErrInvariantViolation, invoice.InvoiceID)
			}
		}
		return first.AccountID, first.TaxCodeID, &invoice, nil
	}

	return l.AccountID, l.TaxCodeID, nil, nil
}

// valueJournalEntry values the lines of a journal entry that do not post to a money
// account. Money-account lines only move balances.
func (e *Engine) valueJournalEntry(txn domain.Transaction) ([]domain.ValuedLine, []domain.SkippedLine, error) {
	var lines []domain.ValuedLine
	var skipped []domain.SkippedLine
	for _, l := range txn.Lines {
		if l.AccountID == nil {
			skipped = append(skipped, skipLine(txn, l, errNoAccount))
			continue
		}
		account, known := e.store.LookupAccount(*l.AccountID)
		if known && account.IsMoneyAccount() {
			continue
		}

		taxCodeID := l.TaxCodeID
		category, ok := e.categorizer.Category(*l.AccountID)
		if !ok {
			if !known || account.Kind != domain.ControlAccount {
				skipped = append(skipped, skipLine(txn, l, apperrors.NewReferenceNotFound("account", *l.AccountID)))
				continue
			}
			category = account.Name
			if account.DefaultTaxCodeID != nil {
				taxCodeID = account.DefaultTaxCodeID
			}
		}

		amounts, err := e.decomposer.InternalEntry(l, taxCodeID, e.policy)
		if err != nil {
			if errors.Is(err, apperrors.ErrReferenceNotFound) {
				skipped = append(skipped, skipLine(txn, l, err))
				continue
			}
			return nil, nil, err
		}
		lines = append(lines, domain.ValuedLine{
			TransactionID: txn.TransactionID,
			Kind:          txn.Kind,
			Date:          dayOf(txn.Date),
			Contact:       txn.Contact,
			Description:   firstNonEmpty(l.Description, txn.Description),
			Category:      category,
			Amounts:       amounts,
		})
	}
	return lines, skipped, nil
}

// ReplayBalances opens every bank and cash account at its starting balance and applies
// the balance deltas of every transaction dated on or before until, in date order.
func (e *Engine) ReplayBalances(until time.Time) error {
	until = dayOf(until)
	e.ledger.Reset()
	for _, a := range e.store.MoneyAccounts() {
		e.ledger.Open(a.Name, a.StartingBalance)
	}

	isMoney := func(id uuid.UUID) bool {
		a, ok := e.store.LookupAccount(id)
		return ok && a.IsMoneyAccount()
	}

	var deltas []NamedDelta
	for _, txn := range e.snapshot.Transactions {
		if dayOf(txn.Date).After(until) {
			continue
		}
		if err := accounting.ValidateJournalBalance(txn); err != nil {
			return err
		}
		txnDeltas, err := accounting.BalanceDeltas(txn, isMoney)
		if err != nil {
			return err
		}
		for _, d := range txnDeltas {
			account, ok := e.store.LookupAccount(d.AccountID)
			if !ok || !account.IsMoneyAccount() {
				continue
			}
			deltas = append(deltas, NamedDelta{AccountName: account.Name, Date: d.Date, Amount: d.Amount})
		}
	}
	e.ledger.Replay(deltas)
	e.replayedTo = &until
	return nil
}

// BalanceAsOf returns the balance of a money account after all activity on asOf.
// Balances must have been replayed through asOf.
func (e *Engine) BalanceAsOf(accountName string, asOf time.Time) (decimal.Decimal, error) {
	asOf = dayOf(asOf)
	if e.replayedTo == nil || asOf.After(*e.replayedTo) {
		return decimal.Zero, fmt.Errorf("%w: balances have not been replayed through %s", apperrors.ErrValidation, asOf.Format("2006-01-02"))
	}
	if !e.ledger.Knows(accountName) {
		return decimal.Zero, fmt.Errorf("%w: money account '%s'", apperrors.ErrNotFound, accountName)
	}
	return e.ledger.BalanceAsOf(accountName, asOf), nil
}

// Revaluations returns the revaluation entries dated within period. Balances must have
// been replayed through period.To.
func (e *Engine) Revaluations(period domain.Period) ([]domain.RevaluationEntry, error) {
	to := dayOf(period.To)
	if e.replayedTo == nil || to.After(*e.replayedTo) {
		return nil, fmt.Errorf("%w: balances have not been replayed through %s", apperrors.ErrValidation, to.Format("2006-01-02"))
	}
	calc := NewRevaluationCalculator(e.vc, e.resolver, e.ledger, e.store, e.store)
	all, err := calc.Compute(to)
	if err != nil {
		return nil, err
	}
	var entries []domain.RevaluationEntry
	for _, entry := range all {
		if period.Contains(entry.Date) {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// Aggregate merges revaluation entries into the valued lines and computes the totals
// the report layer needs.
func (e *Engine) Aggregate(period domain.Period, lines []domain.ValuedLine, revaluations []domain.RevaluationEntry) *domain.ValuationReport {
	merged := make([]domain.ValuedLine, 0, len(lines)+len(revaluations))
	merged = append(merged, lines...)
	for _, r := range revaluations {
		merged = append(merged, r.ToValuedLine())
	}
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Date.Before(merged[j].Date) })

	categories := make(map[string]decimal.Decimal)
	accounts := make(map[string]decimal.Decimal)
	totalNet := decimal.Zero
	totalTax := decimal.Zero
	for _, l := range merged {
		categories[l.Category] = categories[l.Category].Add(l.Amounts.Base.Net)
		if l.AccountName != "" {
			accounts[l.AccountName] = accounts[l.AccountName].Add(l.Amounts.Account.Gross())
		}
		totalNet = totalNet.Add(l.Amounts.Base.Net)
		totalTax = totalTax.Add(l.Amounts.Base.Tax)
	}

	report := &domain.ValuationReport{
		Period:         period,
		BaseCurrencyID: e.vc.BaseCurrency(),
		Lines:          merged,
		Revaluations:   revaluations,
		TotalNetBase:   totalNet,
		TotalTaxBase:   totalTax,
	}
	for name, amount := range categories {
		report.CategoryTotals = append(report.CategoryTotals, domain.CategoryTotal{Category: name, NetAmount: amount})
	}
	sort.Slice(report.CategoryTotals, func(i, j int) bool {
		return report.CategoryTotals[i].Category < report.CategoryTotals[j].Category
	})
	for name, gross := range accounts {
		report.AccountTotals = append(report.AccountTotals, domain.AccountTotal{AccountName: name, Gross: gross})
	}
	sort.Slice(report.AccountTotals, func(i, j int) bool {
		return report.AccountTotals[i].AccountName < report.AccountTotals[j].AccountName
	})
	return report
}

func skipLine(txn domain.Transaction, l domain.TransactionLine, err error) domain.SkippedLine {
	reason := domain.SkipUnresolvedReference
	if errors.Is(err, errNoAccount) {
		reason = domain.SkipNoAccount
	}
	return domain.SkippedLine{TransactionID: txn.TransactionID, LineID: l.LineID, Reason: reason, Detail: err.Error()}
}

func skipAll(txn domain.Transaction, err error) []domain.SkippedLine {
	out := make([]domain.SkippedLine, 0, len(txn.Lines))
	for _, l := range txn.Lines {
		out = append(out, skipLine(txn, l, err))
	}
	return out
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
