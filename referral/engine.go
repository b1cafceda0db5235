// Package referral maintains the invitation tree: each member's parent link
// and materialized invite path. The path of a child is only ever derived by
// appending the child to its inviter's path, so ancestor resolution is a
// pure read over the stored path, never a recursive walk.
package referral

import (
	"context"
	"errors"
	"fmt"

	"github.com/uplinehq/upline/events"
	vgrand "github.com/uplinehq/upline/libs/rand"
	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/storage"
	"github.com/uplinehq/upline/types"
)

var (
	ErrInviterNotFound = func(code string) error {
		return fmt.Errorf("no inviter for invite code %q", code)
	}

	ErrMemberNotFound = func(id types.MemberID) error {
		return fmt.Errorf("member %q not found", id)
	}

	ErrAlreadyAttached = func(id types.MemberID) error {
		return fmt.Errorf("member %q is already part of the invitation tree", id)
	}

	ErrMaxDirectReferralsExceeded = errors.New("inviter already has the maximum number of direct referrals")

	ErrMaxDepthExceeded = errors.New("attaching would exceed the maximum tree depth")
)

type Engine struct {
	log *logging.Logger
	cfg Config

	members MemberStore
	broker  Broker
	timeSvc TimeService
}

func New(log *logging.Logger, cfg Config, members MemberStore, broker Broker, timeSvc TimeService) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		log:     log,
		cfg:     cfg,
		members: members,
		broker:  broker,
		timeSvc: timeSvc,
	}
}

// ReloadConf is used in order to reload the internal configuration of
// the referral engine.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}

	e.cfg = cfg
}

// Register creates a root member: no inviter, a path of just their own id,
// and a fresh invite code. Used to seed the tree.
func (e *Engine) Register(ctx context.Context, id types.MemberID) (*types.Member, error) {
	if _, err := e.members.GetMember(ctx, id); err == nil {
		return nil, ErrAlreadyAttached(id)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	member := &types.Member{
		ID:         id,
		Path:       types.NewRootPath(id),
		InviteCode: vgrand.RandomStr(e.cfg.InviteCodeLength),
		JoinedAt:   e.timeSvc.GetTimeNow(),
	}

	if err := e.members.AddMember(ctx, member); err != nil {
		return nil, err
	}

	return member.Clone(), nil
}

// Attach resolves the invite code to an inviter and inserts the new member
// underneath it. The child's path and the inviter's direct-referral counter
// are persisted together or not at all. The cap check here is only a fast
// path for a clean error: the store re-checks it inside the same atomic
// write as the increment, so concurrent attachments racing on a stale
// counter cannot overshoot the cap.
func (e *Engine) Attach(ctx context.Context, childID types.MemberID, inviteCode string) (*types.Member, error) {
	if _, err := e.members.GetMember(ctx, childID); err == nil {
		return nil, ErrAlreadyAttached(childID)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	inviter, err := e.members.GetMemberByInviteCode(ctx, inviteCode)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInviterNotFound(inviteCode)
		}
		return nil, err
	}

	if inviter.DirectReferrals >= e.cfg.MaxDirectReferrals {
		return nil, ErrMaxDirectReferralsExceeded
	}

	// The path of a member never changes once stored, so unlike the
	// referral counter this check cannot go stale.
	if inviter.Path.Depth()+1 > e.cfg.MaxTreeDepth {
		return nil, ErrMaxDepthExceeded
	}

	now := e.timeSvc.GetTimeNow()

	child := &types.Member{
		ID:         childID,
		InviterID:  inviter.ID,
		Path:       inviter.Path.Child(childID),
		InviteCode: vgrand.RandomStr(e.cfg.InviteCodeLength),
		JoinedAt:   now,
	}

	if err := e.members.AttachMember(ctx, child, inviter.ID, e.cfg.MaxDirectReferrals); err != nil {
		if errors.Is(err, storage.ErrReferralCapExceeded) {
			return nil, ErrMaxDirectReferralsExceeded
		}
		return nil, err
	}

	e.broker.Send(events.NewMemberAttached(child, now))

	return child.Clone(), nil
}

// AncestorChain resolves the ordered ancestors of a member, nearest first,
// capped at maxLevels. Pure read, roots yield an empty chain.
func (e *Engine) AncestorChain(ctx context.Context, id types.MemberID, maxLevels int) ([]types.Ancestor, error) {
	member, err := e.members.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMemberNotFound(id)
		}
		return nil, err
	}

	return member.Path.AncestorChain(maxLevels), nil
}

// Activate flips the member's activated flag after their first confirmed
// deposit. Re-activation is a no-op.
func (e *Engine) Activate(ctx context.Context, id types.MemberID) error {
	member, err := e.members.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMemberNotFound(id)
		}
		return err
	}

	if member.Activated {
		return nil
	}

	member.Activated = true
	if err := e.members.UpdateMember(ctx, member); err != nil {
		return err
	}

	e.broker.Send(events.NewMemberActivated(id, e.timeSvc.GetTimeNow()))

	return nil
}

// Member returns a copy of the stored member.
func (e *Engine) Member(ctx context.Context, id types.MemberID) (*types.Member, error) {
	member, err := e.members.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMemberNotFound(id)
		}
		return nil, err
	}
	return member.Clone(), nil
}
