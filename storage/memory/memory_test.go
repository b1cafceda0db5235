package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/storage"
	"github.com/uplinehq/upline/storage/memory"
	"github.com/uplinehq/upline/types"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func memberOf(id types.MemberID, path types.InvitePath, code string) *types.Member {
	return &types.Member{
		ID:         id,
		Path:       path,
		InviteCode: code,
		JoinedAt:   now,
	}
}

func depositOf(id types.DepositID, member types.MemberID, hash types.TxHash) *types.Deposit {
	return &types.Deposit{
		ID:        id,
		MemberID:  member,
		Amount:    num.MustDecimalFromString("300"),
		TxHash:    hash,
		Status:    types.DepositStatusPending,
		CreatedAt: now,
	}
}

func TestMembers(t *testing.T) {
	t.Run("Duplicate ids and invite codes are rejected", testMemberDuplicates)
	t.Run("Reads hand out clones", testMemberReadsAreClones)
	t.Run("Attaching inserts the child and updates the inviter atomically", testAttachMember)
	t.Run("Attaching a duplicate child leaves the inviter untouched", testAttachMemberDuplicateChild)
	t.Run("Attaching enforces the cap against the stored counter", testAttachMemberCapGuard)
}

func testMemberDuplicates(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.AddMember(ctx, memberOf("r1", types.NewRootPath("r1"), "code-r1")))

	err := store.AddMember(ctx, memberOf("r1", types.NewRootPath("r1"), "code-other"))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	err = store.AddMember(ctx, memberOf("r2", types.NewRootPath("r2"), "code-r1"))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	_, err = store.GetMember(ctx, "ghost")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testMemberReadsAreClones(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.AddMember(ctx, memberOf("r1", types.NewRootPath("r1"), "code-r1")))

	got, err := store.GetMember(ctx, "r1")
	require.NoError(t, err)
	got.DirectReferrals = 42

	again, err := store.GetMember(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 0, again.DirectReferrals)
}

func testAttachMember(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	root := memberOf("r1", types.NewRootPath("r1"), "code-r1")
	require.NoError(t, store.AddMember(ctx, root))

	child := memberOf("a1", root.Path.Child("a1"), "code-a1")
	child.InviterID = "r1"

	require.NoError(t, store.AttachMember(ctx, child, "r1", types.MaxDirectReferrals))

	got, err := store.GetMemberByInviteCode(ctx, "code-a1")
	require.NoError(t, err)
	assert.Equal(t, types.MemberID("a1"), got.ID)

	inviter, err := store.GetMember(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 1, inviter.DirectReferrals)
}

func testAttachMemberDuplicateChild(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	root := memberOf("r1", types.NewRootPath("r1"), "code-r1")
	require.NoError(t, store.AddMember(ctx, root))

	taken := memberOf("a1", root.Path.Child("a1"), "code-a1")
	require.NoError(t, store.AddMember(ctx, taken))

	dup := memberOf("a1", root.Path.Child("a1"), "code-dup")

	err := store.AttachMember(ctx, dup, "r1", types.MaxDirectReferrals)
	require.ErrorIs(t, err, storage.ErrDuplicateKey)

	inviter, err := store.GetMember(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 0, inviter.DirectReferrals)
}

// testAttachMemberCapGuard proves the cap is enforced against the stored
// counter, not whatever the caller last read.
func testAttachMemberCapGuard(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	root := memberOf("r1", types.NewRootPath("r1"), "code-r1")
	root.DirectReferrals = types.MaxDirectReferrals
	require.NoError(t, store.AddMember(ctx, root))

	child := memberOf("a1", root.Path.Child("a1"), "code-a1")
	err := store.AttachMember(ctx, child, "r1", types.MaxDirectReferrals)
	require.ErrorIs(t, err, storage.ErrReferralCapExceeded)

	// The child must not have landed either.
	_, err = store.GetMember(ctx, "a1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	inviter, err := store.GetMember(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, types.MaxDirectReferrals, inviter.DirectReferrals)

	err = store.AttachMember(ctx, child, "ghost", types.MaxDirectReferrals)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeposits(t *testing.T) {
	t.Run("A tx hash can only be stored once", testDepositDuplicateTxHash)
	t.Run("Finalizing is exactly once", testFinalizeDepositOnce)
}

func testDepositDuplicateTxHash(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.AddDeposit(ctx, depositOf("dep-1", "b1", "tx-1")))

	err := store.AddDeposit(ctx, depositOf("dep-2", "a1", "tx-1"))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	got, err := store.GetDepositByTxHash(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, types.DepositID("dep-1"), got.ID)
}

func testFinalizeDepositOnce(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.AddDeposit(ctx, depositOf("dep-1", "b1", "tx-1")))

	final, err := store.FinalizeDeposit(ctx, "dep-1", types.DepositStatusConfirmed, "admin-1", now)
	require.NoError(t, err)
	assert.Equal(t, types.DepositStatusConfirmed, final.Status)
	assert.Equal(t, "admin-1", final.ConfirmedBy)
	assert.True(t, final.ConfirmedAt.Equal(now))

	_, err = store.FinalizeDeposit(ctx, "dep-1", types.DepositStatusRejected, "admin-2", now)
	require.ErrorIs(t, err, storage.ErrAlreadyFinalized)

	got, err := store.GetDeposit(ctx, "dep-1")
	require.NoError(t, err)
	assert.Equal(t, types.DepositStatusConfirmed, got.Status)

	_, err = store.FinalizeDeposit(ctx, "ghost", types.DepositStatusConfirmed, "admin-1", now)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAssets(t *testing.T) {
	t.Run("Crediting accumulates every total", testCreditAsset)
	t.Run("Debiting only reduces the available balance", testDebitAsset)
	t.Run("Overdrawing fails", testDebitInsufficient)
}

func testCreditAsset(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.CreditAsset(ctx, "b1", num.MustDecimalFromString("60")))
	require.NoError(t, store.CreditAsset(ctx, "b1", num.MustDecimalFromString("24")))

	asset, err := store.GetAsset(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, asset.AvailableBalance.Equal(num.MustDecimalFromString("84")))
	assert.True(t, asset.TotalCommission.Equal(num.MustDecimalFromString("84")))
	assert.True(t, asset.MonthlyIncome.Equal(num.MustDecimalFromString("84")))
}

func testDebitAsset(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.CreditAsset(ctx, "b1", num.MustDecimalFromString("60")))
	require.NoError(t, store.DebitAsset(ctx, "b1", num.MustDecimalFromString("25")))

	asset, err := store.GetAsset(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, asset.AvailableBalance.Equal(num.MustDecimalFromString("35")))
	assert.True(t, asset.TotalCommission.Equal(num.MustDecimalFromString("60")))
}

func testDebitInsufficient(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	err := store.DebitAsset(ctx, "ghost", num.DecimalOne())
	assert.ErrorIs(t, err, storage.ErrInsufficientBalance)

	require.NoError(t, store.CreditAsset(ctx, "b1", num.MustDecimalFromString("10")))
	err = store.DebitAsset(ctx, "b1", num.MustDecimalFromString("10.01"))
	assert.ErrorIs(t, err, storage.ErrInsufficientBalance)
}

func TestWithTransaction(t *testing.T) {
	t.Run("A successful callback commits", testTransactionCommits)
	t.Run("A failed callback restores every map", testTransactionRollsBack)
	t.Run("Nested transactions join the outer one", testNestedTransactionJoins)
}

func testTransactionCommits(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	err := store.WithTransaction(ctx, func(ctx context.Context) error {
		if err := store.AddMember(ctx, memberOf("r1", types.NewRootPath("r1"), "code-r1")); err != nil {
			return err
		}
		return store.CreditAsset(ctx, "r1", num.MustDecimalFromString("60"))
	})
	require.NoError(t, err)

	_, err = store.GetMember(ctx, "r1")
	require.NoError(t, err)

	asset, err := store.GetAsset(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, asset.AvailableBalance.Equal(num.MustDecimalFromString("60")))
}

func testTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.AddDeposit(ctx, depositOf("dep-1", "b1", "tx-1")))

	boom := errors.New("boom")
	err := store.WithTransaction(ctx, func(ctx context.Context) error {
		if err := store.CreditAsset(ctx, "b1", num.MustDecimalFromString("60")); err != nil {
			return err
		}
		record, rerr := types.NewCommissionRecord("rec-1", "b1", "a1", 1,
			num.MustDecimalFromString("60"), "dep-1", now)
		if rerr != nil {
			return rerr
		}
		if err := store.AddCommission(ctx, record); err != nil {
			return err
		}
		if _, err := store.FinalizeDeposit(ctx, "dep-1", types.DepositStatusConfirmed, "admin-1", now); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = store.GetAsset(ctx, "b1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	records, err := store.ListCommissionsForDeposit(ctx, "dep-1")
	require.NoError(t, err)
	assert.Empty(t, records)

	deposit, err := store.GetDeposit(ctx, "dep-1")
	require.NoError(t, err)
	assert.Equal(t, types.DepositStatusPending, deposit.Status)
}

func testNestedTransactionJoins(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	boom := errors.New("boom")
	err := store.WithTransaction(ctx, func(ctx context.Context) error {
		if err := store.CreditAsset(ctx, "b1", num.MustDecimalFromString("60")); err != nil {
			return err
		}
		// The inner transaction must not deadlock, and its writes roll back
		// with the outer one.
		if err := store.WithTransaction(ctx, func(ctx context.Context) error {
			return store.CreditAsset(ctx, "a1", num.MustDecimalFromString("24"))
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = store.GetAsset(ctx, "b1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.GetAsset(ctx, "a1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
