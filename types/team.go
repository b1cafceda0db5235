package types

import "github.com/uplinehq/upline/libs/num"

// LevelPerformance aggregates one level of a member's downline.
type LevelPerformance struct {
	// Level is the distance from the team owner, direct referrals are 1.
	Level int

	// Members is how many members sit at this level.
	Members int

	// DepositTotal is the sum of confirmed deposit amounts across the
	// members of this level.
	DepositTotal num.Decimal
}

// TeamStats is the aggregated view of a member's downline.
type TeamStats struct {
	MemberID        MemberID
	DirectReferrals int

	// TeamSize counts every descendant at any depth, excluding the member
	// themselves.
	TeamSize int

	// DepositTotal is the sum of confirmed deposit amounts across the whole
	// downline.
	DepositTotal num.Decimal

	// Levels holds the per-level breakdown ordered by level, only levels
	// with at least one member appear.
	Levels []LevelPerformance
}
