// Package num wraps the decimal arithmetic used for all money amounts in
// the engine. Amounts are exact decimals, never floats.
package num

import (
	"github.com/shopspring/decimal"
)

type Decimal = decimal.Decimal

var (
	dzero    = decimal.Zero
	d1       = decimal.NewFromInt(1)
	dhundred = decimal.NewFromInt(100)
)

func MustDecimalFromString(f string) Decimal {
	d, err := DecimalFromString(f)
	if err != nil {
		panic(err)
	}
	return d
}

func DecimalZero() Decimal {
	return dzero
}

func DecimalOne() Decimal {
	return d1
}

func DecimalHundred() Decimal {
	return dhundred
}

func DecimalFromInt64(i int64) Decimal {
	return decimal.NewFromInt(i)
}

func DecimalFromFloat(v float64) Decimal {
	return decimal.NewFromFloat(v)
}

func DecimalFromString(s string) (Decimal, error) {
	return decimal.NewFromString(s)
}

func MaxD(a, b Decimal) Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func MinD(a, b Decimal) Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// SumD returns the sum of the given decimals.
func SumD(ds ...Decimal) Decimal {
	total := dzero
	for _, d := range ds {
		total = total.Add(d)
	}
	return total
}

// RoundCents rounds a money amount to 2 decimal places, half away from zero.
// For the non-negative amounts handled by the engine this is exactly the
// round-half-up behaviour the ledger requires.
func RoundCents(d Decimal) Decimal {
	return d.Round(2)
}
