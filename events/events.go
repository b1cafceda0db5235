// Package events defines the audit events emitted by the engines. Events
// are the engines' only side channel: the core performs no logging beyond
// structured errors, so everything an operator needs to audit flows through
// here.
package events

import (
	"time"

	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/types"
)

type Type int

const (
	MemberAttachedEvent Type = iota
	MemberActivatedEvent
	DepositSubmittedEvent
	DepositConfirmedEvent
	DepositRejectedEvent
	CommissionsPaidEvent
	RateTableUpdatedEvent
)

// Event is implemented by every audit event.
type Event interface {
	Type() Type
}

type MemberAttached struct {
	MemberID  types.MemberID
	InviterID types.MemberID
	Path      types.InvitePath
	At        time.Time
}

func NewMemberAttached(member *types.Member, at time.Time) *MemberAttached {
	return &MemberAttached{
		MemberID:  member.ID,
		InviterID: member.InviterID,
		Path:      member.Path.Clone(),
		At:        at,
	}
}

func (e MemberAttached) Type() Type { return MemberAttachedEvent }

type MemberActivated struct {
	MemberID types.MemberID
	At       time.Time
}

func NewMemberActivated(id types.MemberID, at time.Time) *MemberActivated {
	return &MemberActivated{MemberID: id, At: at}
}

func (e MemberActivated) Type() Type { return MemberActivatedEvent }

type DepositSubmitted struct {
	DepositID types.DepositID
	MemberID  types.MemberID
	Amount    num.Decimal
	TxHash    types.TxHash
	At        time.Time
}

func NewDepositSubmitted(d *types.Deposit) *DepositSubmitted {
	return &DepositSubmitted{
		DepositID: d.ID,
		MemberID:  d.MemberID,
		Amount:    d.Amount,
		TxHash:    d.TxHash,
		At:        d.CreatedAt,
	}
}

func (e DepositSubmitted) Type() Type { return DepositSubmittedEvent }

type DepositConfirmed struct {
	DepositID types.DepositID
	MemberID  types.MemberID
	Amount    num.Decimal
	Actor     string
	At        time.Time
}

func NewDepositConfirmed(d *types.Deposit, actor string, at time.Time) *DepositConfirmed {
	return &DepositConfirmed{
		DepositID: d.ID,
		MemberID:  d.MemberID,
		Amount:    d.Amount,
		Actor:     actor,
		At:        at,
	}
}

func (e DepositConfirmed) Type() Type { return DepositConfirmedEvent }

type DepositRejected struct {
	DepositID types.DepositID
	MemberID  types.MemberID
	Actor     string
	At        time.Time
}

func NewDepositRejected(d *types.Deposit, actor string, at time.Time) *DepositRejected {
	return &DepositRejected{
		DepositID: d.ID,
		MemberID:  d.MemberID,
		Actor:     actor,
		At:        at,
	}
}

func (e DepositRejected) Type() Type { return DepositRejectedEvent }

type CommissionsPaid struct {
	DepositID       types.DepositID
	SourceID        types.MemberID
	TotalCommission num.Decimal
	CharityAmount   num.Decimal
	StartupAmount   num.Decimal
	Unassigned      num.Decimal
	At              time.Time
}

func NewCommissionsPaid(plan *types.PayoutPlan, at time.Time) *CommissionsPaid {
	return &CommissionsPaid{
		DepositID:       plan.DepositID,
		SourceID:        plan.SourceID,
		TotalCommission: plan.TotalCommission(),
		CharityAmount:   plan.CharityAmount,
		StartupAmount:   plan.StartupAmount,
		Unassigned:      plan.Unassigned,
		At:              at,
	}
}

func (e CommissionsPaid) Type() Type { return CommissionsPaidEvent }

type RateTableUpdated struct {
	OldTable types.RateTable
	NewTable types.RateTable
	Reason   string
	Actor    string
	At       time.Time
}

func NewRateTableUpdated(change *types.RateChange) *RateTableUpdated {
	return &RateTableUpdated{
		OldTable: change.OldTable.Clone(),
		NewTable: change.NewTable.Clone(),
		Reason:   change.Reason,
		Actor:    change.Actor,
		At:       change.At,
	}
}

func (e RateTableUpdated) Type() Type { return RateTableUpdatedEvent }
