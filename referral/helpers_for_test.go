package referral_test

import (
	"sync"
	"testing"
	"time"

	"github.com/uplinehq/upline/events"
	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/referral"
	"github.com/uplinehq/upline/storage/memory"
)

type stubBroker struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *stubBroker) Send(e events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *stubBroker) eventsOfType(t events.Type) []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

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

type testEngine struct {
	*referral.Engine

	cfg    referral.Config
	store  *memory.Store
	broker *stubBroker
	time   *stubTime
}

func newTestEngine(t *testing.T, cfg referral.Config) *testEngine {
	t.Helper()

	store := memory.NewStore()
	broker := &stubBroker{}
	ts := &stubTime{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

	return &testEngine{
		Engine: referral.New(logging.NewTestLogger(), cfg, store, broker, ts),
		cfg:    cfg,
		store:  store,
		broker: broker,
		time:   ts,
	}
}
