package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/uplinehq/upline/libs/num"
)

var (
	ErrNonPositiveAmount    = errors.New("amount must be strictly positive")
	ErrNegativeAmount       = errors.New("amount must not be negative")
	ErrLevelOutOfRange      = fmt.Errorf("level must be in range [1, %d]", MaxTreeDepth)
	ErrUnknownFlowType      = errors.New("unknown fund flow type")
	ErrUnknownFlowDirection = errors.New("unknown fund flow direction")
)

// CommissionRecord is an immutable payout fact: who deposited, who got paid,
// at which level, and how much. Records are only ever created by the ledger,
// never mutated or deleted. They are the audit trail.
type CommissionRecord struct {
	ID        string
	SourceID  MemberID // the depositing member
	TargetID  MemberID // the paid member
	Level     int
	Amount    num.Decimal
	DepositID DepositID
	CreatedAt time.Time
}

// NewCommissionRecord builds a record, rejecting malformed values so they
// can never enter the ledger.
func NewCommissionRecord(id string, source, target MemberID, level int, amount num.Decimal, depositID DepositID, at time.Time) (*CommissionRecord, error) {
	if level < 1 || level > MaxTreeDepth {
		return nil, ErrLevelOutOfRange
	}
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	return &CommissionRecord{
		ID:        id,
		SourceID:  source,
		TargetID:  target,
		Level:     level,
		Amount:    amount,
		DepositID: depositID,
		CreatedAt: at,
	}, nil
}

func (r *CommissionRecord) Clone() *CommissionRecord {
	c := *r
	return &c
}

// Asset is the mutable balance aggregate of one member. Every mutation is
// paired with a CommissionRecord or FundFlow so balances stay
// reconstructable from the ledger.
type Asset struct {
	MemberID         MemberID
	AvailableBalance num.Decimal
	TotalCommission  num.Decimal
	MonthlyIncome    num.Decimal
	UpdatedAt        time.Time
}

func NewAsset(id MemberID) *Asset {
	return &Asset{
		MemberID:         id,
		AvailableBalance: num.DecimalZero(),
		TotalCommission:  num.DecimalZero(),
		MonthlyIncome:    num.DecimalZero(),
	}
}

func (a *Asset) Clone() *Asset {
	c := *a
	return &c
}

type FlowType string

const (
	FlowTypeDeposit    FlowType = "deposit"
	FlowTypeCommission FlowType = "commission"
	FlowTypeCharity    FlowType = "charity"
	FlowTypeStartup    FlowType = "startup"
	FlowTypeWithdrawal FlowType = "withdrawal"
	FlowTypeTransfer   FlowType = "transfer"
)

type FlowDirection string

const (
	FlowDirectionIncome  FlowDirection = "income"
	FlowDirectionOutcome FlowDirection = "outcome"
)

// FundFlow is an immutable ledger line for pool-level accounting. Flows are
// append-only, never updated in place.
type FundFlow struct {
	ID        string
	Type      FlowType
	Direction FlowDirection
	Amount    num.Decimal
	RelatedID string
	CreatedAt time.Time
}

// NewFundFlow builds a flow, rejecting malformed values.
func NewFundFlow(id string, ft FlowType, dir FlowDirection, amount num.Decimal, relatedID string, at time.Time) (*FundFlow, error) {
	switch ft {
	case FlowTypeDeposit, FlowTypeCommission, FlowTypeCharity, FlowTypeStartup, FlowTypeWithdrawal, FlowTypeTransfer:
	default:
		return nil, ErrUnknownFlowType
	}
	switch dir {
	case FlowDirectionIncome, FlowDirectionOutcome:
	default:
		return nil, ErrUnknownFlowDirection
	}
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &FundFlow{
		ID:        id,
		Type:      ft,
		Direction: dir,
		Amount:    amount,
		RelatedID: relatedID,
		CreatedAt: at,
	}, nil
}

func (f *FundFlow) Clone() *FundFlow {
	c := *f
	return &c
}
