package sqlstore

import (
	"context"
	"time"

	"github.com/georgysavva/scany/pgxscan"

	"github.com/uplinehq/upline/referral"
	"github.com/uplinehq/upline/storage"
	"github.com/uplinehq/upline/types"
)

var _ referral.MemberStore = (*Members)(nil)

type Members struct {
	*ConnectionSource
}

func NewMembers(connectionSource *ConnectionSource) *Members {
	return &Members{
		ConnectionSource: connectionSource,
	}
}

type memberRow struct {
	ID              string    `db:"id"`
	InviterID       string    `db:"inviter_id"`
	Path            string    `db:"path"`
	InviteCode      string    `db:"invite_code"`
	DirectReferrals int       `db:"direct_referrals"`
	Activated       bool      `db:"activated"`
	JoinedAt        time.Time `db:"joined_at"`
}

func (r memberRow) toMember() (*types.Member, error) {
	path, err := types.ParseInvitePath(r.Path)
	if err != nil {
		return nil, err
	}
	return &types.Member{
		ID:              types.MemberID(r.ID),
		InviterID:       types.MemberID(r.InviterID),
		Path:            path,
		InviteCode:      r.InviteCode,
		DirectReferrals: r.DirectReferrals,
		Activated:       r.Activated,
		JoinedAt:        r.JoinedAt,
	}, nil
}

const selectMembers = `SELECT id, inviter_id, path, invite_code, direct_referrals, activated, joined_at FROM members`

func (ms *Members) GetMember(ctx context.Context, id types.MemberID) (*types.Member, error) {
	row := memberRow{}
	if err := pgxscan.Get(ctx, ms.Connection, &row, selectMembers+` WHERE id=$1`, id.String()); err != nil {
		return nil, ms.wrapE(err)
	}
	return row.toMember()
}

func (ms *Members) GetMemberByInviteCode(ctx context.Context, code string) (*types.Member, error) {
	row := memberRow{}
	if err := pgxscan.Get(ctx, ms.Connection, &row, selectMembers+` WHERE invite_code=$1`, code); err != nil {
		return nil, ms.wrapE(err)
	}
	return row.toMember()
}

func (ms *Members) AddMember(ctx context.Context, member *types.Member) error {
	_, err := ms.Connection.Exec(ctx,
		`INSERT INTO members(id, inviter_id, path, invite_code, direct_referrals, activated, joined_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		member.ID.String(),
		member.InviterID.String(),
		member.Path.String(),
		member.InviteCode,
		member.DirectReferrals,
		member.Activated,
		member.JoinedAt,
	)
	return ms.wrapE(err)
}

func (ms *Members) UpdateMember(ctx context.Context, member *types.Member) error {
	tag, err := ms.Connection.Exec(ctx,
		`UPDATE members
		 SET inviter_id=$2, path=$3, invite_code=$4, direct_referrals=$5, activated=$6, joined_at=$7
		 WHERE id=$1`,
		member.ID.String(),
		member.InviterID.String(),
		member.Path.String(),
		member.InviteCode,
		member.DirectReferrals,
		member.Activated,
		member.JoinedAt,
	)
	if err != nil {
		return ms.wrapE(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// AttachMember inserts the child and bumps the inviter in one transaction.
// The increment is relative and guarded by the cap in the WHERE clause, so
// concurrent attachments serialise on the inviter row instead of clobbering
// each other with absolute counter values.
func (ms *Members) AttachMember(ctx context.Context, child *types.Member, inviterID types.MemberID, maxDirectReferrals int) error {
	return ms.WithTransaction(ctx, func(ctx context.Context) error {
		if err := ms.AddMember(ctx, child); err != nil {
			return err
		}

		tag, err := ms.Connection.Exec(ctx,
			`UPDATE members
			 SET direct_referrals = direct_referrals + 1
			 WHERE id=$1 AND direct_referrals < $2`,
			inviterID.String(),
			maxDirectReferrals,
		)
		if err != nil {
			return ms.wrapE(err)
		}
		if tag.RowsAffected() == 0 {
			if _, err := ms.GetMember(ctx, inviterID); err != nil {
				return err
			}
			return storage.ErrReferralCapExceeded
		}
		return nil
	})
}
