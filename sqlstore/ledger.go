package sqlstore

import (
	"context"
	"time"

	"github.com/georgysavva/scany/pgxscan"

	"github.com/uplinehq/upline/ledger"
	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/storage"
	"github.com/uplinehq/upline/types"
)

var _ ledger.Store = (*Ledger)(nil)

// Ledger persists commission records, fund flows and the per-member asset
// aggregates. It is the only store whose writes are expected to run inside
// WithTransaction.
type Ledger struct {
	*ConnectionSource
}

func NewLedger(connectionSource *ConnectionSource) *Ledger {
	return &Ledger{
		ConnectionSource: connectionSource,
	}
}

func (ls *Ledger) HasCommissionsForDeposit(ctx context.Context, id types.DepositID) (bool, error) {
	var exists bool
	err := pgxscan.Get(ctx, ls.Connection, &exists,
		`SELECT EXISTS(SELECT 1 FROM commissions WHERE deposit_id=$1)`, id.String())
	return exists, ls.wrapE(err)
}

func (ls *Ledger) AddCommission(ctx context.Context, record *types.CommissionRecord) error {
	_, err := ls.Connection.Exec(ctx,
		`INSERT INTO commissions(id, source_id, target_id, level, amount, deposit_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		record.ID,
		record.SourceID.String(),
		record.TargetID.String(),
		record.Level,
		record.Amount,
		record.DepositID.String(),
		record.CreatedAt,
	)
	return ls.wrapE(err)
}

type commissionRow struct {
	ID        string      `db:"id"`
	SourceID  string      `db:"source_id"`
	TargetID  string      `db:"target_id"`
	Level     int         `db:"level"`
	Amount    num.Decimal `db:"amount"`
	DepositID string      `db:"deposit_id"`
	CreatedAt time.Time   `db:"created_at"`
}

func (ls *Ledger) ListCommissionsForDeposit(ctx context.Context, id types.DepositID) ([]*types.CommissionRecord, error) {
	rows := []commissionRow{}
	err := pgxscan.Select(ctx, ls.Connection, &rows,
		`SELECT id, source_id, target_id, level, amount, deposit_id, created_at
		 FROM commissions WHERE deposit_id=$1 ORDER BY level`, id.String())
	if err != nil {
		return nil, ls.wrapE(err)
	}

	out := make([]*types.CommissionRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, &types.CommissionRecord{
			ID:        r.ID,
			SourceID:  types.MemberID(r.SourceID),
			TargetID:  types.MemberID(r.TargetID),
			Level:     r.Level,
			Amount:    r.Amount,
			DepositID: types.DepositID(r.DepositID),
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

func (ls *Ledger) AddFundFlow(ctx context.Context, flow *types.FundFlow) error {
	_, err := ls.Connection.Exec(ctx,
		`INSERT INTO fund_flows(id, type, direction, amount, related_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		flow.ID,
		string(flow.Type),
		string(flow.Direction),
		flow.Amount,
		flow.RelatedID,
		flow.CreatedAt,
	)
	return ls.wrapE(err)
}

type assetRow struct {
	MemberID         string      `db:"member_id"`
	AvailableBalance num.Decimal `db:"available_balance"`
	TotalCommission  num.Decimal `db:"total_commission"`
	MonthlyIncome    num.Decimal `db:"monthly_income"`
	UpdatedAt        time.Time   `db:"updated_at"`
}

func (ls *Ledger) GetAsset(ctx context.Context, id types.MemberID) (*types.Asset, error) {
	row := assetRow{}
	err := pgxscan.Get(ctx, ls.Connection, &row,
		`SELECT member_id, available_balance, total_commission, monthly_income, updated_at
		 FROM assets WHERE member_id=$1`, id.String())
	if err != nil {
		return nil, ls.wrapE(err)
	}
	return &types.Asset{
		MemberID:         types.MemberID(row.MemberID),
		AvailableBalance: row.AvailableBalance,
		TotalCommission:  row.TotalCommission,
		MonthlyIncome:    row.MonthlyIncome,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}

// CreditAsset increments the aggregate atomically, the upsert makes the row
// level lock exclusive per member.
func (ls *Ledger) CreditAsset(ctx context.Context, id types.MemberID, amount num.Decimal) error {
	_, err := ls.Connection.Exec(ctx,
		`INSERT INTO assets(member_id, available_balance, total_commission, monthly_income, updated_at)
		 VALUES ($1, $2, $2, $2, NOW())
		 ON CONFLICT (member_id) DO UPDATE
		 SET available_balance = assets.available_balance + EXCLUDED.available_balance,
		     total_commission  = assets.total_commission  + EXCLUDED.total_commission,
		     monthly_income    = assets.monthly_income    + EXCLUDED.monthly_income,
		     updated_at        = NOW()`,
		id.String(),
		amount,
	)
	return ls.wrapE(err)
}

// DebitAsset decrements the available balance, the balance guard in the
// WHERE clause rejects overdrafts atomically.
func (ls *Ledger) DebitAsset(ctx context.Context, id types.MemberID, amount num.Decimal) error {
	tag, err := ls.Connection.Exec(ctx,
		`UPDATE assets
		 SET available_balance = available_balance - $2, updated_at = NOW()
		 WHERE member_id=$1 AND available_balance >= $2`,
		id.String(),
		amount,
	)
	if err != nil {
		return ls.wrapE(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrInsufficientBalance
	}
	return nil
}
