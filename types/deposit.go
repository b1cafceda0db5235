package types

import (
	"time"

	"github.com/uplinehq/upline/libs/num"
)

// DepositID is the identifier of a single funding event.
type DepositID string

func (id DepositID) String() string {
	return string(id)
}

// TxHash is the on-chain transaction reference backing a deposit. It is
// unique across all deposits, which is what prevents replay.
type TxHash string

func (h TxHash) String() string {
	return string(h)
}

type DepositStatus string

const (
	DepositStatusPending   DepositStatus = "pending"
	DepositStatusConfirmed DepositStatus = "confirmed"
	DepositStatusRejected  DepositStatus = "rejected"
)

// Deposit is a funding event. It is created pending and transitions to
// confirmed or rejected exactly once, by an administrator.
type Deposit struct {
	ID          DepositID
	MemberID    MemberID
	Amount      num.Decimal
	TxHash      TxHash
	Status      DepositStatus
	CreatedAt   time.Time
	ConfirmedAt time.Time
	ConfirmedBy string
}

func (d *Deposit) IsFinalized() bool {
	return d.Status != DepositStatusPending
}

func (d *Deposit) Clone() *Deposit {
	c := *d
	return &c
}
