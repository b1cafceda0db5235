package types

import (
	"github.com/uplinehq/upline/libs/num"
)

// PayoutInstruction credits one recipient for one level of a deposit.
type PayoutInstruction struct {
	TargetID MemberID
	Level    int
	Amount   num.Decimal
}

// PayoutPlan is the full, side-effect free outcome of computing the payouts
// for one confirmed deposit. It is handed to the ledger to be applied as a
// single all-or-nothing unit.
type PayoutPlan struct {
	DepositID     DepositID
	SourceID      MemberID
	DepositAmount num.Decimal

	// Instructions are ordered by level, 1 first.
	Instructions []PayoutInstruction

	CharityAmount num.Decimal
	StartupAmount num.Decimal

	// Unassigned accumulates level amounts that could not be routed to any
	// recipient because the chain was short and no platform account was
	// configured. Tracked so the money is never silently dropped.
	Unassigned num.Decimal
}

// TotalCommission sums all instruction amounts.
func (p *PayoutPlan) TotalCommission() num.Decimal {
	total := num.DecimalZero()
	for _, ins := range p.Instructions {
		total = total.Add(ins.Amount)
	}
	return total
}

// TotalAllocated sums everything the plan accounts for, including the
// explicitly tracked unassigned remainder. Conservation checks compare this
// against the policy total for the deposit.
func (p *PayoutPlan) TotalAllocated() num.Decimal {
	return p.TotalCommission().Add(p.CharityAmount).Add(p.StartupAmount).Add(p.Unassigned)
}
