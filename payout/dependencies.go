package payout

import (
	"context"

	"github.com/uplinehq/upline/types"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks github.com/uplinehq/upline/payout DepositStore,CommissionChecker,ChainResolver,RateSource,PlatformAccountProvider

// DepositStore reads deposits.
type DepositStore interface {
	GetDeposit(ctx context.Context, id types.DepositID) (*types.Deposit, error)
}

// CommissionChecker reports whether commission records already exist for a
// deposit. This is the idempotency key for the whole pipeline.
type CommissionChecker interface {
	HasCommissionsForDeposit(ctx context.Context, id types.DepositID) (bool, error)
}

// ChainResolver resolves a member's ordered ancestor chain, nearest first.
type ChainResolver interface {
	AncestorChain(ctx context.Context, id types.MemberID, maxLevels int) ([]types.Ancestor, error)
}

// RateSource supplies a consistent snapshot of the commission schedule.
type RateSource interface {
	Rates() types.RateTable
}

// PlatformAccountProvider supplies the designated fallback recipient for
// levels beyond the ancestor chain's depth. The second value is false when
// no platform account is configured.
type PlatformAccountProvider interface {
	PlatformAccount(ctx context.Context) (types.MemberID, bool)
}
