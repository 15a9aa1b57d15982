package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_valuation/internal/apperrors"
	"github.com/SscSPs/money_valuation/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceDelta is a signed change to a money account's balance, in the account's own currency.
type BalanceDelta struct {
	AccountID uuid.UUID
	Date      time.Time
	Amount    decimal.Decimal
}

// BalanceDeltas derives the money-account balance changes caused by a transaction.
// isMoneyAccount reports whether an account ID refers to a bank or cash account.
//
// RECEIPT  -> +sum(lines) on the money account
// PAYMENT  -> -sum(lines) on the money account
// TRANSFER -> -FromAmount on the source, +ToAmount on the destination
// JOURNAL  -> debit - credit for every line posted to a money account
func BalanceDeltas(txn domain.Transaction, isMoneyAccount func(uuid.UUID) bool) ([]BalanceDelta, error) {
	switch txn.Kind {
	case domain.Receipt, domain.Payment:
		if txn.MoneyAccountID == nil {
			return nil, nil
		}
		total := decimal.Zero
		for _, l := range txn.Lines {
			total = total.Add(l.Amount)
		}
		if txn.Kind == domain.Payment {
			total = total.Neg()
		}
		return []BalanceDelta{{AccountID: *txn.MoneyAccountID, Date: txn.Date, Amount: total}}, nil
	case domain.Transfer:
		var deltas []BalanceDelta
		if txn.FromAccountID != nil {
			deltas = append(deltas, BalanceDelta{AccountID: *txn.FromAccountID, Date: txn.Date, Amount: txn.FromAmount.Neg()})
		}
		if txn.ToAccountID != nil {
			deltas = append(deltas, BalanceDelta{AccountID: *txn.ToAccountID, Date: txn.Date, Amount: txn.TransferredIn()})
		}
		return deltas, nil
	case domain.JournalEntry:
		var deltas []BalanceDelta
		for _, l := range txn.Lines {
			if l.AccountID == nil || !isMoneyAccount(*l.AccountID) {
				continue
			}
			deltas = append(deltas, BalanceDelta{AccountID: *l.AccountID, Date: txn.Date, Amount: l.Debit.Sub(l.Credit)})
		}
		return deltas, nil
	default:
		return nil, fmt.Errorf("%w: unknown transaction kind '%s' for transaction %s", apperrors.ErrValidation, txn.Kind, txn.TransactionID)
	}
}

// ValidateJournalBalance checks that the debits of a journal entry equal its credits.
func ValidateJournalBalance(txn domain.Transaction) error {
	if txn.Kind != domain.JournalEntry {
		return nil
	}
	sum := decimal.Zero
	for _, l := range txn.Lines {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("%w: journal entry %s has a negative debit or credit on line %s",
				apperrors.ErrInvariantViolation, txn.TransactionID, l.LineID)
		}
		sum = sum.Add(l.Debit).Sub(l.Credit)
	}
	if !sum.IsZero() {
		return fmt.Errorf("%w: journal entry %s does not balance: debits - credits = %s",
			apperrors.ErrInvariantViolation, txn.TransactionID, sum.String())
	}
	return nil
}
