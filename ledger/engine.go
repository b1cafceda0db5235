// Package ledger applies payout plans to member balances and the
// append-only fund-flow ledger. Application is the single most
// safety-critical operation in the system: a half-applied payout would
// permanently break the invariant that balances are reconstructable from
// the ledger, so everything happens inside one storage transaction, guarded
// against re-application inside that same transaction.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uplinehq/upline/events"
	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/storage"
	"github.com/uplinehq/upline/types"

	"github.com/google/uuid"
)

var (
	// ErrAlreadyApplied is an idempotency conflict, not a failure: the plan's
	// deposit has already been credited. Callers may treat it as a
	// successful no-op.
	ErrAlreadyApplied = errors.New("payout plan already applied for this deposit")

	ErrInsufficientBalance = errors.New("insufficient available balance")

	ErrUnsupportedDebitFlow = errors.New("debits must be withdrawal or transfer flows")
)

type Engine struct {
	log *logging.Logger
	cfg Config

	store   Store
	broker  Broker
	timeSvc TimeService
}

func New(log *logging.Logger, cfg Config, store Store, broker Broker, timeSvc TimeService) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		log:     log,
		cfg:     cfg,
		store:   store,
		broker:  broker,
		timeSvc: timeSvc,
	}
}

// ReloadConf is used in order to reload the internal configuration of
// the ledger engine.
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

// Apply credits every instruction of the plan and appends the commission,
// charity and startup fund flows, all inside one transaction. Instructions
// are applied in level order for deterministic audit ordering. The
// re-application guard is two-fold: the existence check runs inside the
// same transaction as the writes, and the store's per-deposit-and-level
// uniqueness backs it up for two applications racing under read-committed
// isolation, where neither sees the other's uncommitted rows.
func (e *Engine) Apply(ctx context.Context, plan *types.PayoutPlan) error {
	now := e.timeSvc.GetTimeNow()

	err := e.store.WithTransaction(ctx, func(ctx context.Context) error {
		applied, err := e.store.HasCommissionsForDeposit(ctx, plan.DepositID)
		if err != nil {
			return err
		}
		if applied {
			return ErrAlreadyApplied
		}

		for _, ins := range plan.Instructions {
			record, err := types.NewCommissionRecord(
				uuid.NewString(), plan.SourceID, ins.TargetID, ins.Level, ins.Amount, plan.DepositID, now)
			if err != nil {
				return fmt.Errorf("invalid payout instruction at level %d: %w", ins.Level, err)
			}
			if err := e.store.AddCommission(ctx, record); err != nil {
				// The store keeps one commission per deposit and level. A
				// concurrent application that slipped past the existence
				// check above trips this instead of double-crediting.
				if errors.Is(err, storage.ErrDuplicateKey) {
					return ErrAlreadyApplied
				}
				return err
			}
			if err := e.store.CreditAsset(ctx, ins.TargetID, ins.Amount); err != nil {
				return err
			}
		}

		related := plan.DepositID.String()

		if total := plan.TotalCommission(); total.IsPositive() {
			if err := e.addFlow(ctx, types.FlowTypeCommission, total, related, now); err != nil {
				return err
			}
		}
		if plan.CharityAmount.IsPositive() {
			if err := e.addFlow(ctx, types.FlowTypeCharity, plan.CharityAmount, related, now); err != nil {
				return err
			}
		}
		if plan.StartupAmount.IsPositive() {
			if err := e.addFlow(ctx, types.FlowTypeStartup, plan.StartupAmount, related, now); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	e.log.Info("payout plan applied",
		logging.String("deposit", plan.DepositID.String()),
		logging.Int("instructions", len(plan.Instructions)),
		logging.Decimal("commission", plan.TotalCommission()),
	)

	e.broker.Send(events.NewCommissionsPaid(plan, now))

	return nil
}

// Debit removes funds from a member's available balance, pairing the
// mutation with an outcome fund flow so the ledger stays the source of
// truth. Used for withdrawals and transfers.
func (e *Engine) Debit(ctx context.Context, id types.MemberID, amount num.Decimal, flowType types.FlowType, relatedID string) error {
	if flowType != types.FlowTypeWithdrawal && flowType != types.FlowTypeTransfer {
		return ErrUnsupportedDebitFlow
	}
	if !amount.IsPositive() {
		return types.ErrNonPositiveAmount
	}

	return e.store.WithTransaction(ctx, func(ctx context.Context) error {
		if err := e.store.DebitAsset(ctx, id, amount); err != nil {
			if errors.Is(err, storage.ErrInsufficientBalance) {
				return ErrInsufficientBalance
			}
			return err
		}

		flow, err := types.NewFundFlow(
			uuid.NewString(), flowType, types.FlowDirectionOutcome, amount, relatedID, e.timeSvc.GetTimeNow())
		if err != nil {
			return err
		}
		return e.store.AddFundFlow(ctx, flow)
	})
}

// Balance returns a copy of the member's asset aggregate, zero-valued if
// the member was never credited.
func (e *Engine) Balance(ctx context.Context, id types.MemberID) (*types.Asset, error) {
	asset, err := e.store.GetAsset(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.NewAsset(id), nil
		}
		return nil, err
	}
	return asset.Clone(), nil
}

func (e *Engine) addFlow(ctx context.Context, ft types.FlowType, amount num.Decimal, relatedID string, now time.Time) error {
	flow, err := types.NewFundFlow(uuid.NewString(), ft, types.FlowDirectionIncome, amount, relatedID, now)
	if err != nil {
		return err
	}
	return e.store.AddFundFlow(ctx, flow)
}
