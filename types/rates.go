package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/uplinehq/upline/libs/num"
)

var (
	ErrEmptyRateTable      = errors.New("rate table must contain at least one level")
	ErrTooManyLevels       = fmt.Errorf("rate table must not exceed %d levels", MaxTreeDepth)
	ErrNegativeRate        = errors.New("rate table entries must not be negative")
	ErrRateSumExceedsLimit = errors.New("rate table entries must not sum to more than 100%")
)

// RateTable is the ordered commission schedule: entry i holds the
// percentage (as a fraction of the deposit amount, e.g. 0.2 for 20%) paid
// to the level i+1 ancestor.
type RateTable []num.Decimal

// Validate checks the schedule invariants: at least one level, no more
// levels than the tree can be deep, no negative entry, total at most 100%.
func (t RateTable) Validate() error {
	if len(t) == 0 {
		return ErrEmptyRateTable
	}
	if len(t) > MaxTreeDepth {
		return ErrTooManyLevels
	}
	total := num.DecimalZero()
	for _, rate := range t {
		if rate.IsNegative() {
			return ErrNegativeRate
		}
		total = total.Add(rate)
	}
	if total.GreaterThan(num.DecimalOne()) {
		return ErrRateSumExceedsLimit
	}
	return nil
}

// Levels returns the number of configured levels.
func (t RateTable) Levels() int {
	return len(t)
}

// Rate returns the percentage for the given 1-based level.
func (t RateTable) Rate(level int) num.Decimal {
	return t[level-1]
}

// Sum returns the total percentage allocated across all levels.
func (t RateTable) Sum() num.Decimal {
	return num.SumD(t...)
}

func (t RateTable) Clone() RateTable {
	c := make(RateTable, len(t))
	copy(c, t)
	return c
}

// RateChange is one audit row of the rate table history. History rows are
// append-only.
type RateChange struct {
	ID       string
	OldTable RateTable
	NewTable RateTable
	Reason   string
	Actor    string
	At       time.Time
}

func (c *RateChange) Clone() *RateChange {
	clone := *c
	clone.OldTable = c.OldTable.Clone()
	clone.NewTable = c.NewTable.Clone()
	return &clone
}
