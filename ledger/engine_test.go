package ledger_test

import (
	"context"
	"testing"

	"github.com/uplinehq/upline/events"
	"github.com/uplinehq/upline/ledger"
	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/storage/memory"
	"github.com/uplinehq/upline/types"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Run("Applying a plan credits every recipient and records the audit trail", testApplyCreditsRecipients)
	t.Run("Re-applying the same plan fails without double crediting", testReapplyFails)
	t.Run("A racing application surfacing as a duplicate insert is an idempotency conflict", testRacingApplyFails)
	t.Run("A failure in the middle of a plan rolls everything back", testApplyRollsBackOnFailure)
	t.Run("A malformed instruction aborts the whole plan", testApplyRejectsMalformedInstruction)
}

func TestDebit(t *testing.T) {
	t.Run("Debiting records an outcome flow", testDebitRecordsFlow)
	t.Run("Debiting more than the balance fails", testDebitInsufficientBalance)
	t.Run("Only withdrawal and transfer flows can debit", testDebitUnsupportedFlow)
	t.Run("Non positive debits are rejected", testDebitNonPositive)
}

func testApplyCreditsRecipients(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	plan := planOf("dep-1", "c1", "300",
		instruction("b1", 1, "60"),
		instruction("a1", 2, "24"),
	)

	require.NoError(t, te.Apply(ctx, plan))

	b1, err := te.Balance(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, b1.AvailableBalance.Equal(num.MustDecimalFromString("60")))
	assert.True(t, b1.TotalCommission.Equal(num.MustDecimalFromString("60")))

	a1, err := te.Balance(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, a1.AvailableBalance.Equal(num.MustDecimalFromString("24")))

	records, err := te.store.ListCommissionsForDeposit(ctx, "dep-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, types.MemberID("c1"), records[0].SourceID)
	assert.Equal(t, types.MemberID("b1"), records[0].TargetID)
	assert.Equal(t, 1, records[0].Level)

	flows, err := te.store.ListFundFlows(ctx)
	require.NoError(t, err)
	require.Len(t, flows, 3)

	byType := map[types.FlowType]*types.FundFlow{}
	for _, f := range flows {
		byType[f.Type] = f
		assert.Equal(t, types.FlowDirectionIncome, f.Direction)
		assert.Equal(t, "dep-1", f.RelatedID)
	}
	assert.True(t, byType[types.FlowTypeCommission].Amount.Equal(num.MustDecimalFromString("84")))
	assert.True(t, byType[types.FlowTypeCharity].Amount.Equal(num.MustDecimalFromString("9")))
	assert.True(t, byType[types.FlowTypeStartup].Amount.Equal(num.MustDecimalFromString("6")))

	require.Len(t, te.broker.events, 1)
	assert.Equal(t, events.CommissionsPaidEvent, te.broker.events[0].Type())
}

func testReapplyFails(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	plan := planOf("dep-1", "c1", "300", instruction("b1", 1, "60"))

	require.NoError(t, te.Apply(ctx, plan))
	require.ErrorIs(t, te.Apply(ctx, plan), ledger.ErrAlreadyApplied)

	b1, err := te.Balance(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, b1.AvailableBalance.Equal(num.MustDecimalFromString("60")))

	records, err := te.store.ListCommissionsForDeposit(ctx, "dep-1")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	assert.Len(t, te.broker.events, 1)
}

func testRacingApplyFails(t *testing.T) {
	ctx := context.Background()

	store := memory.NewStore()
	broker := &stubBroker{}
	engine := ledger.New(logging.NewTestLogger(), ledger.NewDefaultConfig(), &racingStore{Store: store}, broker, &stubTime{})

	plan := planOf("dep-1", "c1", "300", instruction("b1", 1, "60"))

	err := engine.Apply(ctx, plan)
	require.ErrorIs(t, err, ledger.ErrAlreadyApplied)

	// Nothing from the losing application may land.
	b1, err := engine.Balance(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, b1.AvailableBalance.IsZero())

	flows, err := store.ListFundFlows(ctx)
	require.NoError(t, err)
	assert.Empty(t, flows)

	assert.Empty(t, broker.events)
}

func testApplyRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()

	store := memory.NewStore()
	failing := &failingStore{
		Store:  store,
		failOn: "a1",
		errOut: errors.New("credit rejected"),
	}
	broker := &stubBroker{}
	engine := ledger.New(logging.NewTestLogger(), ledger.NewDefaultConfig(), failing, broker, &stubTime{})

	plan := planOf("dep-1", "c1", "300",
		instruction("b1", 1, "60"),
		instruction("a1", 2, "24"),
	)

	err := engine.Apply(ctx, plan)
	require.EqualError(t, err, "credit rejected")

	// The first instruction's credit must have been rolled back with the rest.
	b1, err := engine.Balance(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, b1.AvailableBalance.IsZero())

	records, err := store.ListCommissionsForDeposit(ctx, "dep-1")
	require.NoError(t, err)
	assert.Empty(t, records)

	flows, err := store.ListFundFlows(ctx)
	require.NoError(t, err)
	assert.Empty(t, flows)

	assert.Empty(t, broker.events)
}

func testApplyRejectsMalformedInstruction(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	plan := planOf("dep-1", "c1", "300",
		instruction("b1", 1, "60"),
		instruction("a1", 0, "24"),
	)

	err := te.Apply(ctx, plan)
	require.ErrorIs(t, err, types.ErrLevelOutOfRange)

	records, err := te.store.ListCommissionsForDeposit(ctx, "dep-1")
	require.NoError(t, err)
	assert.Empty(t, records)

	b1, err := te.Balance(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, b1.AvailableBalance.IsZero())
}

func testDebitRecordsFlow(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	require.NoError(t, te.Apply(ctx, planOf("dep-1", "c1", "300", instruction("b1", 1, "60"))))

	require.NoError(t, te.Debit(ctx, "b1", num.MustDecimalFromString("25"), types.FlowTypeWithdrawal, "wd-1"))

	b1, err := te.Balance(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, b1.AvailableBalance.Equal(num.MustDecimalFromString("35")))
	// Lifetime totals are not reduced by withdrawals.
	assert.True(t, b1.TotalCommission.Equal(num.MustDecimalFromString("60")))

	flows, err := te.store.ListFundFlows(ctx)
	require.NoError(t, err)

	var withdrawal *types.FundFlow
	for _, f := range flows {
		if f.Type == types.FlowTypeWithdrawal {
			withdrawal = f
		}
	}
	require.NotNil(t, withdrawal)
	assert.Equal(t, types.FlowDirectionOutcome, withdrawal.Direction)
	assert.Equal(t, "wd-1", withdrawal.RelatedID)
}

func testDebitInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	require.NoError(t, te.Apply(ctx, planOf("dep-1", "c1", "300", instruction("b1", 1, "60"))))

	err := te.Debit(ctx, "b1", num.MustDecimalFromString("60.01"), types.FlowTypeWithdrawal, "wd-1")
	require.ErrorIs(t, err, ledger.ErrInsufficientBalance)

	b1, err := te.Balance(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, b1.AvailableBalance.Equal(num.MustDecimalFromString("60")))
}

func testDebitUnsupportedFlow(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	err := te.Debit(ctx, "b1", num.DecimalOne(), types.FlowTypeCommission, "x")
	assert.ErrorIs(t, err, ledger.ErrUnsupportedDebitFlow)
}

func testDebitNonPositive(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	err := te.Debit(ctx, "b1", num.DecimalZero(), types.FlowTypeWithdrawal, "x")
	assert.ErrorIs(t, err, types.ErrNonPositiveAmount)
}

func TestBalanceOfUnknownMemberIsZero(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	asset, err := te.Balance(ctx, "ghost")
	require.NoError(t, err)
	assert.True(t, asset.AvailableBalance.IsZero())
	assert.True(t, asset.TotalCommission.IsZero())
}
