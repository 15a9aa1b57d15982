package services_test

import (
	"testing"

	"github.com/SscSPs/money_valuation/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceLedger_ApplyDelta(t *testing.T) {
	l := services.NewBalanceLedger()
	l.Open("Current Account", dec("100"))

	l.ApplyDelta("Current Account", day(3), dec("10"))
	l.ApplyDelta("Current Account", day(3), dec("-4"))
	l.ApplyDelta("Current Account", day(7), dec("50"))

	snaps := l.Snapshots("Current Account")
	require.Len(t, snaps, 2, "same-day deltas share a snapshot")
	assert.True(t, dec("106").Equal(snaps[0].Balance))
	assert.True(t, dec("156").Equal(snaps[1].Balance))

	tests := []struct {
		name string
		asOf int
		want string
	}{
		{"before any activity", 2, "100"},
		{"on activity day", 3, "106"},
		{"between snapshots", 5, "106"},
		{"after last snapshot", 30, "156"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, dec(tt.want).Equal(l.BalanceAsOf("Current Account", day(tt.asOf))))
		})
	}

	assert.True(t, dec("106").Equal(l.BalanceBefore("Current Account", day(7))), "strictly before excludes the day itself")
	assert.True(t, dec("100").Equal(l.BalanceBefore("Current Account", day(3))))
}

func TestBalanceLedger_UnknownAccount(t *testing.T) {
	l := services.NewBalanceLedger()
	assert.False(t, l.Knows("Nowhere"))
	assert.True(t, l.BalanceAsOf("Nowhere", day(10)).IsZero())

	l.ApplyDelta("Nowhere", day(2), dec("5"))
	assert.True(t, l.Knows("Nowhere"))
	assert.True(t, dec("5").Equal(l.BalanceAsOf("Nowhere", day(10))))
}

func TestBalanceLedger_OutOfOrderDeltaDoesNotRewriteLaterSnapshots(t *testing.T) {
	l := services.NewBalanceLedger()
	l.Open("Petty Cash", dec("0"))

	l.ApplyDelta("Petty Cash", day(10), dec("10"))
	l.ApplyDelta("Petty Cash", day(5), dec("3"))

	assert.True(t, dec("3").Equal(l.BalanceAsOf("Petty Cash", day(5))))
	assert.True(t, dec("10").Equal(l.BalanceAsOf("Petty Cash", day(10))))
}

func TestBalanceLedger_Replay(t *testing.T) {
	deltas := []services.NamedDelta{
		{AccountName: "Euro Bank", Date: day(10), Amount: dec("10")},
		{AccountName: "Euro Bank", Date: day(5), Amount: dec("3")},
		{AccountName: "Petty Cash", Date: day(6), Amount: dec("-2")},
	}

	l := services.NewBalanceLedger()
	l.Open("Euro Bank", dec("1000"))
	l.Open("Petty Cash", dec("50"))
	l.Replay(deltas)

	assert.True(t, dec("1003").Equal(l.BalanceAsOf("Euro Bank", day(5))))
	assert.True(t, dec("1013").Equal(l.BalanceAsOf("Euro Bank", day(10))))
	assert.True(t, dec("48").Equal(l.BalanceAsOf("Petty Cash", day(31))))

	l.Reset()
	l.Replay(deltas)
	assert.True(t, dec("1013").Equal(l.BalanceAsOf("Euro Bank", day(31))), "replaying after reset is idempotent")
	assert.Len(t, l.Snapshots("Euro Bank"), 2)
}
