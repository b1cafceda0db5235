package banking

import (
	"context"
	"time"

	"github.com/uplinehq/upline/events"
	"github.com/uplinehq/upline/types"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks github.com/uplinehq/upline/banking DepositStore,PayoutEngine,LedgerEngine,Tree,Broker,TimeService

// DepositStore persists deposits.
type DepositStore interface {
	GetDeposit(ctx context.Context, id types.DepositID) (*types.Deposit, error)
	GetDepositByTxHash(ctx context.Context, hash types.TxHash) (*types.Deposit, error)
	AddDeposit(ctx context.Context, deposit *types.Deposit) error

	// FinalizeDeposit transitions a pending deposit to the given final
	// status exactly once, returning storage.ErrAlreadyFinalized when the
	// deposit already left pending.
	FinalizeDeposit(ctx context.Context, id types.DepositID, status types.DepositStatus, actor string, at time.Time) (*types.Deposit, error)
}

// PayoutEngine computes the payout plan for a confirmed deposit.
type PayoutEngine interface {
	Compute(ctx context.Context, depositID types.DepositID) (*types.PayoutPlan, error)
}

// LedgerEngine applies a payout plan as a single all-or-nothing unit.
type LedgerEngine interface {
	Apply(ctx context.Context, plan *types.PayoutPlan) error
}

// Tree is the registration-facing slice of the referral engine.
type Tree interface {
	Attach(ctx context.Context, childID types.MemberID, inviteCode string) (*types.Member, error)
	Activate(ctx context.Context, id types.MemberID) error
}

// Broker is used to notify deposit lifecycle transitions.
type Broker interface {
	Send(event events.Event)
}

// TimeService is used to time stamp deposits.
type TimeService interface {
	GetTimeNow() time.Time
}
