package sqlstore

import (
	"context"

	"github.com/georgysavva/scany/pgxscan"

	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/team"
	"github.com/uplinehq/upline/types"
)

var _ team.Store = (*Teams)(nil)

// Teams serves the downline queries. Descendants are resolved with a single
// prefix scan over the materialized paths, no recursion needed.
type Teams struct {
	*Members
}

func NewTeams(members *Members) *Teams {
	return &Teams{
		Members: members,
	}
}

func (ts *Teams) ListDescendants(ctx context.Context, id types.MemberID) ([]*types.Member, error) {
	rows := []memberRow{}
	err := pgxscan.Select(ctx, ts.Connection, &rows,
		selectMembers+` WHERE path LIKE (SELECT path FROM members WHERE id=$1) || '/%'`,
		id.String())
	if err != nil {
		return nil, ts.wrapE(err)
	}

	out := make([]*types.Member, 0, len(rows))
	for _, r := range rows {
		member, err := r.toMember()
		if err != nil {
			return nil, err
		}
		out = append(out, member)
	}
	return out, nil
}

func (ts *Teams) ConfirmedDepositTotals(ctx context.Context, ids []types.MemberID) (map[types.MemberID]num.Decimal, error) {
	memberIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		memberIDs = append(memberIDs, id.String())
	}

	rows := []struct {
		MemberID string      `db:"member_id"`
		Total    num.Decimal `db:"total"`
	}{}
	err := pgxscan.Select(ctx, ts.Connection, &rows,
		`SELECT member_id, SUM(amount) AS total
		 FROM deposits
		 WHERE status=$1 AND member_id = ANY($2)
		 GROUP BY member_id`,
		string(types.DepositStatusConfirmed),
		memberIDs,
	)
	if err != nil {
		return nil, ts.wrapE(err)
	}

	totals := make(map[types.MemberID]num.Decimal, len(rows))
	for _, r := range rows {
		totals[types.MemberID(r.MemberID)] = r.Total
	}
	return totals, nil
}
