package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRows serves canned rows through the pgx.Rows interface.
type fakeRows struct {
	rows [][]any
	pos  int
	err  error
}

func (r *fakeRows) Close() {}
func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error) { return r.rows[r.pos-1], nil }
func (r *fakeRows) RawValues() [][]byte { return nil }
func (r *fakeRows) Conn() *pgx.Conn { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d destinations for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *pgtype.UUID:
			if id, ok := row[i].(uuid.UUID); ok {
				*p = pgtype.UUID{Bytes: id, Valid: true}
			} else {
				*p = pgtype.UUID{}
			}
		case *string:
			*p = row[i].(string)
		case *bool:
			*p = row[i].(bool)
		case *int32:
			*p = row[i].(int32)
		case *decimal.Decimal:
			*p = decimal.RequireFromString(row[i].(string))
		case *time.Time:
			*p = row[i].(time.Time)
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

// fakeQuerier answers queries by matching the table named after FROM.
type fakeQuerier struct {
	tables  map[string][][]any
	queries []string
	args    [][]any
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.queries = append(q.queries, sql)
	q.args = append(q.args, args)
	for table, rows := range q.tables {
		if strings.Contains(sql, "FROM "+table+"\n") || strings.Contains(sql, "FROM "+table+" ") {
			return &fakeRows{rows: rows}, nil
		}
	}
	return nil, errors.New("unexpected query: " + sql)
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestListCurrencies(t *testing.T) {
	gbp, eur := uuid.New(), uuid.New()
	q := &fakeQuerier{tables: map[string][][]any{
		"currencies": {
			{eur, "EUR", "€", "Euro", false},
			{gbp, "GBP", "£", "Pound Sterling", true},
		},
	}}

	currencies, err := (&PgxCurrencyRepository{}).listCurrencies(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, currencies, 2)
	assert.Equal(t, eur, currencies[0].CurrencyID)
	assert.Equal(t, "GBP", currencies[1].Code)
	assert.True(t, currencies[1].IsBase)
}

func TestListAccounts_NullableColumns(t *testing.T) {
	bank, vat := uuid.New(), uuid.New()
	q := &fakeQuerier{tables: map[string][][]any{
		"accounts": {
			{bank, "Current Account", "BANK", nil, "500.00", nil},
			{uuid.New(), "Payables", "CONTROL", nil, "0", vat},
		},
	}}

	accounts, err := (&PgxAccountRepository{}).listAccounts(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Nil(t, accounts[0].CurrencyID)
	assert.True(t, decimal.RequireFromString("500").Equal(accounts[0].StartingBalance))
	require.NotNil(t, accounts[1].DefaultTaxCodeID)
	assert.Equal(t, vat, *accounts[1].DefaultTaxCodeID)
}

func TestListTaxCodes_GroupsComponents(t *testing.T) {
	vat, zero := uuid.New(), uuid.New()
	q := &fakeQuerier{tables: map[string][][]any{
		"tax_codes":      {{vat, "VAT 20%"}, {zero, "Zero rated"}},
		"tax_components": {{vat, "VAT", "20"}},
	}}

	codes, err := (&PgxTaxCodeRepository{}).listTaxCodes(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, codes, 2)
	require.Len(t, codes[0].Components, 1)
	assert.True(t, decimal.NewFromInt(20).Equal(codes[0].Components[0].Rate))
	assert.Empty(t, codes[1].Components)
}

func TestListTransactions_AttachesLinesAndFiltersByDate(t *testing.T) {
	txnID, bank, sales := uuid.New(), uuid.New(), uuid.New()
	q := &fakeQuerier{tables: map[string][][]any{
		"transactions": {
			{txnID, "RECEIPT", day(12), "Acme", "Invoice 42", bank, nil, nil, "0", "0"},
		},
		"transaction_lines": {
			{uuid.New(), txnID, sales, nil, "132.00", "0", "0", "", nil, nil},
		},
	}}

	txns, err := (&PgxTransactionRepository{}).listTransactions(context.Background(), q, day(31).Add(15*time.Hour))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, day(12), txns[0].Date)
	require.NotNil(t, txns[0].MoneyAccountID)
	assert.Equal(t, bank, *txns[0].MoneyAccountID)
	require.Len(t, txns[0].Lines, 1)
	assert.True(t, decimal.NewFromInt(132).Equal(txns[0].Lines[0].Amount))

	require.Len(t, q.args, 2)
	assert.Equal(t, []any{"2024-01-31"}, q.args[0], "until is passed as a calendar date")
}

func TestListExchangeRateObservations_QueryError(t *testing.T) {
	q := &fakeQuerier{tables: map[string][][]any{}}

	_, err := (&PgxExchangeRateRepository{}).listObservations(context.Background(), q)
	assert.ErrorContains(t, err, "failed to list exchange rates")
}

func TestCollect_PropagatesRowsError(t *testing.T) {
	rowsErr := errors.New("connection reset")
	_, err := collect(&fakeRows{err: rowsErr}, func(row pgx.Rows, s *string) error { return row.Scan(s) })
	assert.ErrorIs(t, err, rowsErr)
}
