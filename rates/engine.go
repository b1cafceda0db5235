// Package rates holds the per-level commission schedule. The table is
// read-mostly: readers always observe a complete table, and every update is
// recorded in an append-only history for audit.
package rates

import (
	"context"
	"sync"
	"time"

	"github.com/uplinehq/upline/events"
	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/types"

	"github.com/google/uuid"
)

// Re-exported so callers can match on the validation failures without
// importing types directly.
var (
	ErrRateSumExceedsLimit = types.ErrRateSumExceedsLimit
	ErrTooManyLevels       = types.ErrTooManyLevels
	ErrNegativeRate        = types.ErrNegativeRate
)

// HistoryStore appends and lists rate change audit rows.
type HistoryStore interface {
	AddRateChange(ctx context.Context, change *types.RateChange) error
	ListRateChanges(ctx context.Context) ([]*types.RateChange, error)
}

// Broker is used to notify schedule changes.
type Broker interface {
	Send(event events.Event)
}

// TimeService is used to time stamp schedule changes.
type TimeService interface {
	GetTimeNow() time.Time
}

type Engine struct {
	log *logging.Logger
	cfg Config

	history HistoryStore
	broker  Broker
	timeSvc TimeService

	// mu guards current. Updates swap the whole table so concurrent readers
	// see either the old or the new schedule, never a mix.
	mu      sync.RWMutex
	current types.RateTable
}

func New(log *logging.Logger, cfg Config, history HistoryStore, broker Broker, timeSvc TimeService) (*Engine, error) {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}

	return &Engine{
		log:     log,
		cfg:     cfg,
		history: history,
		broker:  broker,
		timeSvc: timeSvc,
		current: table,
	}, nil
}

// ReloadConf is used in order to reload the internal configuration of
// the rates engine. The active table is not touched: schedule changes go
// through Update so they are audited.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}

	e.cfg = cfg
}

// Rates returns a snapshot of the active schedule.
func (e *Engine) Rates() types.RateTable {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current.Clone()
}

// Update validates and installs a new schedule, appending an audit row
// first. History is append-only, never overwritten.
func (e *Engine) Update(ctx context.Context, newTable types.RateTable, reason, actor string) error {
	if err := newTable.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.timeSvc.GetTimeNow()
	change := &types.RateChange{
		ID:       uuid.NewString(),
		OldTable: e.current.Clone(),
		NewTable: newTable.Clone(),
		Reason:   reason,
		Actor:    actor,
		At:       now,
	}

	if err := e.history.AddRateChange(ctx, change); err != nil {
		return err
	}

	e.current = newTable.Clone()

	e.log.Info("commission rate table updated",
		logging.String("actor", actor),
		logging.String("reason", reason),
		logging.Decimal("total", e.current.Sum()),
	)

	e.broker.Send(events.NewRateTableUpdated(change))

	return nil
}

// History lists all schedule changes, oldest first.
func (e *Engine) History(ctx context.Context) ([]*types.RateChange, error) {
	return e.history.ListRateChanges(ctx)
}
