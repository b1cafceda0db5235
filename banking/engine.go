// Package banking owns the deposit lifecycle: intake with tx-hash replay
// protection, and the administrator confirm/reject actions. Confirming a
// deposit synchronously runs the payout computation and the ledger
// application within the same request; there is no background worker.
// Safety against duplicate confirmation comes from the payout/ledger
// idempotency guards, not from any scheduling discipline here.
package banking

import (
	"context"
	"errors"
	"fmt"

	"github.com/uplinehq/upline/events"
	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/storage"
	"github.com/uplinehq/upline/types"

	"github.com/google/uuid"
)

var (
	ErrDepositNotFound = func(id types.DepositID) error {
		return fmt.Errorf("deposit %q not found", id)
	}

	ErrInvalidDepositAmount = func(got, want num.Decimal) error {
		return fmt.Errorf("deposit amount must be exactly %s, got %s", want.String(), got.String())
	}

	// ErrDuplicateTxHash rejects replaying an already-seen funding
	// transaction.
	ErrDuplicateTxHash = func(hash types.TxHash) error {
		return fmt.Errorf("a deposit already exists for transaction %q", hash)
	}

	// ErrDepositAlreadyFinalized rejects finalizing a deposit twice with
	// different outcomes.
	ErrDepositAlreadyFinalized = errors.New("deposit has already been confirmed or rejected")
)

type Engine struct {
	log *logging.Logger
	cfg Config

	deposits DepositStore
	payouts  PayoutEngine
	ledger   LedgerEngine
	tree     Tree
	broker   Broker
	timeSvc  TimeService

	depositAmount num.Decimal
}

func New(
	log *logging.Logger,
	cfg Config,
	deposits DepositStore,
	payouts PayoutEngine,
	ledger LedgerEngine,
	tree Tree,
	broker Broker,
	timeSvc TimeService,
) (*Engine, error) {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	amount, err := cfg.depositAmount()
	if err != nil {
		return nil, fmt.Errorf("unable to load deposit amount: %w", err)
	}

	return &Engine{
		log:           log,
		cfg:           cfg,
		deposits:      deposits,
		payouts:       payouts,
		ledger:        ledger,
		tree:          tree,
		broker:        broker,
		timeSvc:       timeSvc,
		depositAmount: amount,
	}, nil
}

// ReloadConf is used in order to reload the internal configuration of
// the banking engine.
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

// RegisterWithInvite attaches a new member under the owner of the invite
// code.
func (e *Engine) RegisterWithInvite(ctx context.Context, newMemberID types.MemberID, inviteCode string) (*types.Member, error) {
	return e.tree.Attach(ctx, newMemberID, inviteCode)
}

// SubmitDeposit creates a pending deposit for the member. The amount must
// equal the configured fixed amount and the tx hash must never have been
// seen before.
func (e *Engine) SubmitDeposit(ctx context.Context, memberID types.MemberID, txHash types.TxHash, amount num.Decimal) (types.DepositID, error) {
	if !amount.Equal(e.depositAmount) {
		return "", ErrInvalidDepositAmount(amount, e.depositAmount)
	}

	if _, err := e.deposits.GetDepositByTxHash(ctx, txHash); err == nil {
		return "", ErrDuplicateTxHash(txHash)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return "", err
	}

	deposit := &types.Deposit{
		ID:        types.DepositID(uuid.NewString()),
		MemberID:  memberID,
		Amount:    amount,
		TxHash:    txHash,
		Status:    types.DepositStatusPending,
		CreatedAt: e.timeSvc.GetTimeNow(),
	}

	if err := e.deposits.AddDeposit(ctx, deposit); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return "", ErrDuplicateTxHash(txHash)
		}
		return "", err
	}

	e.broker.Send(events.NewDepositSubmitted(deposit))

	return deposit.ID, nil
}

// ConfirmDeposit marks the deposit confirmed and synchronously runs the
// payout pipeline: compute the plan, apply it, activate the depositor.
//
// The call is safe to retry. A retry after a crash between confirmation and
// application resumes the pipeline; a retry after full success surfaces the
// payout engine's ErrAlreadyProcessed, which callers may treat as a
// successful no-op. A deposit that was rejected cannot be confirmed.
func (e *Engine) ConfirmDeposit(ctx context.Context, id types.DepositID, actor string) error {
	deposit, err := e.deposits.GetDeposit(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrDepositNotFound(id)
		}
		return err
	}

	switch deposit.Status {
	case types.DepositStatusRejected:
		return ErrDepositAlreadyFinalized
	case types.DepositStatusPending:
		now := e.timeSvc.GetTimeNow()
		deposit, err = e.deposits.FinalizeDeposit(ctx, id, types.DepositStatusConfirmed, actor, now)
		if err != nil {
			if errors.Is(err, storage.ErrAlreadyFinalized) {
				// Another administrator got there first. Fall through to the
				// pipeline, the idempotency guards decide whether anything
				// is left to do.
				deposit, err = e.deposits.GetDeposit(ctx, id)
				if err != nil {
					return err
				}
				if deposit.Status != types.DepositStatusConfirmed {
					return ErrDepositAlreadyFinalized
				}
			} else {
				return err
			}
		} else {
			e.broker.Send(events.NewDepositConfirmed(deposit, actor, now))
		}
	}

	plan, err := e.payouts.Compute(ctx, id)
	if err != nil {
		return err
	}

	if err := e.ledger.Apply(ctx, plan); err != nil {
		return err
	}

	if err := e.tree.Activate(ctx, deposit.MemberID); err != nil {
		return err
	}

	e.log.Info("deposit confirmed and paid out",
		logging.String("deposit", id.String()),
		logging.String("member", deposit.MemberID.String()),
		logging.String("actor", actor),
	)

	return nil
}

// RejectDeposit marks the deposit rejected. Rejection never triggers any
// payout.
func (e *Engine) RejectDeposit(ctx context.Context, id types.DepositID, actor string) error {
	if _, err := e.deposits.GetDeposit(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrDepositNotFound(id)
		}
		return err
	}

	now := e.timeSvc.GetTimeNow()
	deposit, err := e.deposits.FinalizeDeposit(ctx, id, types.DepositStatusRejected, actor, now)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyFinalized) {
			return ErrDepositAlreadyFinalized
		}
		return err
	}

	e.broker.Send(events.NewDepositRejected(deposit, actor, now))

	return nil
}

// Deposit returns a copy of the stored deposit.
func (e *Engine) Deposit(ctx context.Context, id types.DepositID) (*types.Deposit, error) {
	deposit, err := e.deposits.GetDeposit(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDepositNotFound(id)
		}
		return nil, err
	}
	return deposit.Clone(), nil
}
