package ledger

import (
	"context"
	"time"

	"github.com/uplinehq/upline/events"
	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/types"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks github.com/uplinehq/upline/ledger Store,Broker,TimeService

// Store is the transactional data store the ledger writes through. All
// writes issued from within the callback passed to WithTransaction commit
// together or not at all.
type Store interface {
	// WithTransaction runs fn inside a storage transaction. The error
	// returned by fn is passed through unchanged after rollback.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	HasCommissionsForDeposit(ctx context.Context, id types.DepositID) (bool, error)
	AddCommission(ctx context.Context, record *types.CommissionRecord) error
	AddFundFlow(ctx context.Context, flow *types.FundFlow) error
	GetAsset(ctx context.Context, id types.MemberID) (*types.Asset, error)

	// CreditAsset increments the member's available balance, total
	// commission and monthly income, creating the asset row if absent. The
	// increment must be exclusive per member so concurrent credits cannot
	// interleave.
	CreditAsset(ctx context.Context, id types.MemberID, amount num.Decimal) error

	// DebitAsset decrements the member's available balance, failing with
	// storage.ErrInsufficientBalance when it does not cover the amount.
	DebitAsset(ctx context.Context, id types.MemberID, amount num.Decimal) error
}

// Broker is used to notify applied payouts for auditing.
type Broker interface {
	Send(event events.Event)
}

// TimeService is used to time stamp ledger records.
type TimeService interface {
	GetTimeNow() time.Time
}
