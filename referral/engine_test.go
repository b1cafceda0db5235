package referral_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/uplinehq/upline/events"
	"github.com/uplinehq/upline/referral"
	"github.com/uplinehq/upline/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("Registering a root member succeeds", testRegisterRoot)
	t.Run("Registering twice fails", testRegisterTwiceFails)
}

func TestAttach(t *testing.T) {
	t.Run("Attaching with a valid invite code succeeds", testAttachSucceeds)
	t.Run("Attaching an existing member fails", testAttachExistingMemberFails)
	t.Run("Attaching with an unknown invite code fails", testAttachUnknownCodeFails)
	t.Run("Attaching beyond the direct referral cap fails", testAttachDirectReferralCap)
	t.Run("Concurrent attachments cannot overshoot the cap", testAttachConcurrentCap)
	t.Run("Attaching beyond the maximum depth fails", testAttachDepthCap)
}

func TestAncestorChain(t *testing.T) {
	t.Run("Chain is resolved nearest first", testAncestorChainResolution)
	t.Run("Chain of an unknown member fails", testAncestorChainUnknownMember)
}

func TestActivate(t *testing.T) {
	t.Run("Activation flips the flag once", testActivateOnce)
	t.Run("Re-activation is a no-op", testReactivateNoOp)
}

func testRegisterRoot(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, referral.NewDefaultConfig())

	root, err := te.Register(ctx, "r1")
	require.NoError(t, err)

	assert.True(t, root.IsRoot())
	assert.Equal(t, 0, root.Path.Depth())
	assert.Len(t, root.InviteCode, te.cfg.InviteCodeLength)
	assert.Equal(t, te.time.now, root.JoinedAt)
}

func testRegisterTwiceFails(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, referral.NewDefaultConfig())

	_, err := te.Register(ctx, "r1")
	require.NoError(t, err)

	_, err = te.Register(ctx, "r1")
	assert.EqualError(t, err, referral.ErrAlreadyAttached("r1").Error())
}

func testAttachSucceeds(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, referral.NewDefaultConfig())

	root, err := te.Register(ctx, "r1")
	require.NoError(t, err)

	child, err := te.Attach(ctx, "a1", root.InviteCode)
	require.NoError(t, err)

	assert.Equal(t, types.MemberID("r1"), child.InviterID)
	assert.Equal(t, 1, child.Path.Depth())
	assert.True(t, child.Path.Contains("r1"))

	inviter, err := te.Member(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 1, inviter.DirectReferrals)

	attached := te.broker.eventsOfType(events.MemberAttachedEvent)
	require.Len(t, attached, 1)
	assert.Equal(t, types.MemberID("a1"), attached[0].(*events.MemberAttached).MemberID)
}

func testAttachExistingMemberFails(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, referral.NewDefaultConfig())

	root, err := te.Register(ctx, "r1")
	require.NoError(t, err)

	_, err = te.Attach(ctx, "a1", root.InviteCode)
	require.NoError(t, err)

	_, err = te.Attach(ctx, "a1", root.InviteCode)
	assert.EqualError(t, err, referral.ErrAlreadyAttached("a1").Error())
}

func testAttachUnknownCodeFails(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, referral.NewDefaultConfig())

	_, err := te.Attach(ctx, "a1", "nope1234")
	assert.EqualError(t, err, referral.ErrInviterNotFound("nope1234").Error())
}

func testAttachDirectReferralCap(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, referral.NewDefaultConfig())

	root, err := te.Register(ctx, "r1")
	require.NoError(t, err)

	for i := 0; i < te.cfg.MaxDirectReferrals; i++ {
		_, err := te.Attach(ctx, types.MemberID(fmt.Sprintf("a%d", i)), root.InviteCode)
		require.NoError(t, err)
	}

	_, err = te.Attach(ctx, "one-too-many", root.InviteCode)
	assert.ErrorIs(t, err, referral.ErrMaxDirectReferralsExceeded)
}

// testAttachConcurrentCap races twice the cap's worth of attachments against
// one inviter. The engine's counter read is stale by construction for most
// of them, so only the store's guarded increment keeps the tree legal.
func testAttachConcurrentCap(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, referral.NewDefaultConfig())

	root, err := te.Register(ctx, "r1")
	require.NoError(t, err)

	attempts := 2 * te.cfg.MaxDirectReferrals
	errs := make(chan error, attempts)

	var start, done sync.WaitGroup
	start.Add(1)
	for i := 0; i < attempts; i++ {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			start.Wait()
			_, err := te.Attach(ctx, types.MemberID(fmt.Sprintf("c%d", i)), root.InviteCode)
			errs <- err
		}(i)
	}
	start.Done()
	done.Wait()
	close(errs)

	attached := 0
	for err := range errs {
		if err == nil {
			attached++
			continue
		}
		require.ErrorIs(t, err, referral.ErrMaxDirectReferralsExceeded)
	}
	assert.Equal(t, te.cfg.MaxDirectReferrals, attached)

	inviter, err := te.Member(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, te.cfg.MaxDirectReferrals, inviter.DirectReferrals)

	children, err := te.store.ListDescendants(ctx, "r1")
	require.NoError(t, err)
	assert.Len(t, children, te.cfg.MaxDirectReferrals)
}

func testAttachDepthCap(t *testing.T) {
	ctx := context.Background()
	cfg := referral.NewDefaultConfig()
	cfg.MaxTreeDepth = 3
	te := newTestEngine(t, cfg)

	member, err := te.Register(ctx, "m0")
	require.NoError(t, err)

	for i := 1; i <= cfg.MaxTreeDepth; i++ {
		member, err = te.Attach(ctx, types.MemberID(fmt.Sprintf("m%d", i)), member.InviteCode)
		require.NoError(t, err)
	}

	_, err = te.Attach(ctx, "too-deep", member.InviteCode)
	assert.ErrorIs(t, err, referral.ErrMaxDepthExceeded)
}

func testAncestorChainResolution(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, referral.NewDefaultConfig())

	root, err := te.Register(ctx, "r1")
	require.NoError(t, err)
	a, err := te.Attach(ctx, "a1", root.InviteCode)
	require.NoError(t, err)
	b, err := te.Attach(ctx, "b1", a.InviteCode)
	require.NoError(t, err)
	_, err = te.Attach(ctx, "c1", b.InviteCode)
	require.NoError(t, err)

	chain, err := te.AncestorChain(ctx, "c1", types.MaxTreeDepth)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, types.Ancestor{ID: "b1", Level: 1}, chain[0])
	assert.Equal(t, types.Ancestor{ID: "a1", Level: 2}, chain[1])
	assert.Equal(t, types.Ancestor{ID: "r1", Level: 3}, chain[2])

	capped, err := te.AncestorChain(ctx, "c1", 1)
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Equal(t, types.MemberID("b1"), capped[0].ID)
}

func testAncestorChainUnknownMember(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, referral.NewDefaultConfig())

	_, err := te.AncestorChain(ctx, "ghost", types.MaxTreeDepth)
	assert.EqualError(t, err, referral.ErrMemberNotFound("ghost").Error())
}

func testActivateOnce(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, referral.NewDefaultConfig())

	_, err := te.Register(ctx, "r1")
	require.NoError(t, err)

	require.NoError(t, te.Activate(ctx, "r1"))

	member, err := te.Member(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, member.Activated)
	assert.Len(t, te.broker.eventsOfType(events.MemberActivatedEvent), 1)
}

func testReactivateNoOp(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t, referral.NewDefaultConfig())

	_, err := te.Register(ctx, "r1")
	require.NoError(t, err)

	require.NoError(t, te.Activate(ctx, "r1"))
	require.NoError(t, te.Activate(ctx, "r1"))

	assert.Len(t, te.broker.eventsOfType(events.MemberActivatedEvent), 1)
}
