package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/uplinehq/upline/events"
	"github.com/uplinehq/upline/ledger"
	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/storage"
	"github.com/uplinehq/upline/storage/memory"
	"github.com/uplinehq/upline/types"
)

type stubBroker struct {
	events []events.Event
}

func (b *stubBroker) Send(e events.Event) {
	b.events = append(b.events, e)
}

type stubTime struct {
	now time.Time
}

func (s *stubTime) GetTimeNow() time.Time {
	return s.now
}

// failingStore wraps the memory store and fails crediting one specific
// member, to prove a mid-plan failure rolls the whole application back.
type failingStore struct {
	*memory.Store

	failOn types.MemberID
	errOut error
}

func (f *failingStore) CreditAsset(ctx context.Context, id types.MemberID, amount num.Decimal) error {
	if id == f.failOn {
		return f.errOut
	}
	return f.Store.CreditAsset(ctx, id, amount)
}

// racingStore mimics a concurrent application under read-committed
// isolation: the existence check sees nothing, but the insert collides with
// the other transaction's row on the per-deposit-and-level uniqueness.
type racingStore struct {
	*memory.Store
}

func (r *racingStore) AddCommission(ctx context.Context, record *types.CommissionRecord) error {
	return storage.ErrDuplicateKey
}

type testEngine struct {
	*ledger.Engine

	store  *memory.Store
	broker *stubBroker
	time   *stubTime
}

func newTestEngine(t *testing.T) *testEngine {
	t.Helper()

	store := memory.NewStore()
	broker := &stubBroker{}
	ts := &stubTime{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

	return &testEngine{
		Engine: ledger.New(logging.NewTestLogger(), ledger.NewDefaultConfig(), store, broker, ts),
		store:  store,
		broker: broker,
		time:   ts,
	}
}

func planOf(depositID types.DepositID, source types.MemberID, depositAmount string, instructions ...types.PayoutInstruction) *types.PayoutPlan {
	return &types.PayoutPlan{
		DepositID:     depositID,
		SourceID:      source,
		DepositAmount: num.MustDecimalFromString(depositAmount),
		Instructions:  instructions,
		CharityAmount: num.MustDecimalFromString("9"),
		StartupAmount: num.MustDecimalFromString("6"),
		Unassigned:    num.DecimalZero(),
	}
}

func instruction(target types.MemberID, level int, amount string) types.PayoutInstruction {
	return types.PayoutInstruction{
		TargetID: target,
		Level:    level,
		Amount:   num.MustDecimalFromString(amount),
	}
}
