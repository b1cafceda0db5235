package referral

import (
	"context"
	"time"

	"github.com/uplinehq/upline/events"
	"github.com/uplinehq/upline/types"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks github.com/uplinehq/upline/referral MemberStore,Broker,TimeService

// MemberStore persists members and their tree position.
type MemberStore interface {
	GetMember(ctx context.Context, id types.MemberID) (*types.Member, error)
	GetMemberByInviteCode(ctx context.Context, code string) (*types.Member, error)
	AddMember(ctx context.Context, member *types.Member) error
	UpdateMember(ctx context.Context, member *types.Member) error

	// AttachMember persists the new child and increments the inviter's
	// direct-referral counter as a single atomic write: either both rows
	// land or neither does. The increment is guarded by the cap inside that
	// same atomic unit, so two concurrent attachments cannot both pass a
	// stale counter check; a full inviter yields
	// storage.ErrReferralCapExceeded.
	AttachMember(ctx context.Context, child *types.Member, inviterID types.MemberID, maxDirectReferrals int) error
}

// Broker is used to notify tree mutations for auditing.
type Broker interface {
	Send(event events.Event)
}

// TimeService is used to time stamp memberships.
type TimeService interface {
	GetTimeNow() time.Time
}
