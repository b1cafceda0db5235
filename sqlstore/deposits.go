package sqlstore

import (
	"context"
	"time"

	"github.com/georgysavva/scany/pgxscan"

	"github.com/uplinehq/upline/banking"
	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/storage"
	"github.com/uplinehq/upline/types"
)

var _ banking.DepositStore = (*Deposits)(nil)

type Deposits struct {
	*ConnectionSource
}

func NewDeposits(connectionSource *ConnectionSource) *Deposits {
	return &Deposits{
		ConnectionSource: connectionSource,
	}
}

type depositRow struct {
	ID          string      `db:"id"`
	MemberID    string      `db:"member_id"`
	Amount      num.Decimal `db:"amount"`
	TxHash      string      `db:"tx_hash"`
	Status      string      `db:"status"`
	CreatedAt   time.Time   `db:"created_at"`
	ConfirmedAt *time.Time  `db:"confirmed_at"`
	ConfirmedBy string      `db:"confirmed_by"`
}

func (r depositRow) toDeposit() *types.Deposit {
	d := &types.Deposit{
		ID:          types.DepositID(r.ID),
		MemberID:    types.MemberID(r.MemberID),
		Amount:      r.Amount,
		TxHash:      types.TxHash(r.TxHash),
		Status:      types.DepositStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		ConfirmedBy: r.ConfirmedBy,
	}
	if r.ConfirmedAt != nil {
		d.ConfirmedAt = *r.ConfirmedAt
	}
	return d
}

const selectDeposits = `SELECT id, member_id, amount, tx_hash, status, created_at, confirmed_at, confirmed_by FROM deposits`

func (ds *Deposits) GetDeposit(ctx context.Context, id types.DepositID) (*types.Deposit, error) {
	row := depositRow{}
	if err := pgxscan.Get(ctx, ds.Connection, &row, selectDeposits+` WHERE id=$1`, id.String()); err != nil {
		return nil, ds.wrapE(err)
	}
	return row.toDeposit(), nil
}

func (ds *Deposits) GetDepositByTxHash(ctx context.Context, hash types.TxHash) (*types.Deposit, error) {
	row := depositRow{}
	if err := pgxscan.Get(ctx, ds.Connection, &row, selectDeposits+` WHERE tx_hash=$1`, hash.String()); err != nil {
		return nil, ds.wrapE(err)
	}
	return row.toDeposit(), nil
}

func (ds *Deposits) AddDeposit(ctx context.Context, deposit *types.Deposit) error {
	_, err := ds.Connection.Exec(ctx,
		`INSERT INTO deposits(id, member_id, amount, tx_hash, status, created_at, confirmed_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		deposit.ID.String(),
		deposit.MemberID.String(),
		deposit.Amount,
		deposit.TxHash.String(),
		string(deposit.Status),
		deposit.CreatedAt,
		deposit.ConfirmedBy,
	)
	return ds.wrapE(err)
}

// FinalizeDeposit moves a pending deposit to its final status. The status
// guard in the WHERE clause makes the transition exactly-once even under
// concurrent administrators.
func (ds *Deposits) FinalizeDeposit(ctx context.Context, id types.DepositID, status types.DepositStatus, actor string, at time.Time) (*types.Deposit, error) {
	tag, err := ds.Connection.Exec(ctx,
		`UPDATE deposits
		 SET status=$2, confirmed_at=$3, confirmed_by=$4
		 WHERE id=$1 AND status=$5`,
		id.String(),
		string(status),
		at,
		actor,
		string(types.DepositStatusPending),
	)
	if err != nil {
		return nil, ds.wrapE(err)
	}

	if tag.RowsAffected() == 0 {
		deposit, err := ds.GetDeposit(ctx, id)
		if err != nil {
			return nil, err
		}
		if deposit.IsFinalized() {
			return nil, storage.ErrAlreadyFinalized
		}
		return nil, storage.ErrNotFound
	}

	return ds.GetDeposit(ctx, id)
}
