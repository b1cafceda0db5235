package banking_test

import (
	"testing"
	"time"

	"github.com/uplinehq/upline/banking"
	"github.com/uplinehq/upline/events"
	"github.com/uplinehq/upline/ledger"
	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/payout"
	"github.com/uplinehq/upline/rates"
	"github.com/uplinehq/upline/referral"
	"github.com/uplinehq/upline/storage/memory"

	"github.com/stretchr/testify/require"
)

type stubBroker struct {
	events []events.Event
}

func (b *stubBroker) Send(e events.Event) {
	b.events = append(b.events, e)
}

func (b *stubBroker) eventsOfType(t events.Type) []events.Event {
	out := []events.Event{}
	for _, e := range b.events {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

type stubTime struct {
	now time.Time
}

func (s *stubTime) GetTimeNow() time.Time {
	return s.now
}

// testPipeline wires the full deposit pipeline over one in-memory store:
// referral tree, rate schedule, payout calculator, ledger, banking.
type testPipeline struct {
	*banking.Engine

	store  *memory.Store
	tree   *referral.Engine
	ledger *ledger.Engine
	broker *stubBroker
	time   *stubTime
}

func newTestPipeline(t *testing.T) *testPipeline {
	t.Helper()

	log := logging.NewTestLogger()
	store := memory.NewStore()
	broker := &stubBroker{}
	ts := &stubTime{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

	tree := referral.New(log, referral.NewDefaultConfig(), store, broker, ts)

	rateEngine, err := rates.New(log, rates.NewDefaultConfig(), store, broker, ts)
	require.NoError(t, err)

	payoutCfg := payout.NewDefaultConfig()
	payoutCfg.PlatformAccount = "platform"
	payoutEngine, err := payout.New(log, payoutCfg, store, store, tree, rateEngine, nil)
	require.NoError(t, err)

	ledgerEngine := ledger.New(log, ledger.NewDefaultConfig(), store, broker, ts)

	engine, err := banking.New(log, banking.NewDefaultConfig(), store, payoutEngine, ledgerEngine, tree, broker, ts)
	require.NoError(t, err)

	return &testPipeline{
		Engine: engine,
		store:  store,
		tree:   tree,
		ledger: ledgerEngine,
		broker: broker,
		time:   ts,
	}
}
