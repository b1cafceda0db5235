package types_test

import (
	"testing"

	"github.com/uplinehq/upline/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitePath(t *testing.T) {
	t.Run("Root path contains only the owner", testRootPathContainsOnlyOwner)
	t.Run("Child path extends the inviter's path", testChildPathExtendsInviter)
	t.Run("Level of ancestors is counted from the owner", testLevelOfAncestors)
	t.Run("Ancestor chain is ordered nearest first", testAncestorChainOrder)
	t.Run("Ancestor chain is capped", testAncestorChainCap)
	t.Run("Parsing rejects malformed stored paths", testParseRejectsMalformed)
	t.Run("Stored form round trips", testStoredFormRoundTrips)
}

func testRootPathContainsOnlyOwner(t *testing.T) {
	p := types.NewRootPath("r1")

	assert.Equal(t, 0, p.Depth())
	assert.Equal(t, types.MemberID("r1"), p.Self())
	assert.Equal(t, types.MemberID("r1"), p.Root())
	assert.Empty(t, p.AncestorChain(types.MaxTreeDepth))
}

func testChildPathExtendsInviter(t *testing.T) {
	root := types.NewRootPath("r1")
	child := root.Child("a1")
	grandChild := child.Child("b1")

	assert.Equal(t, 1, child.Depth())
	assert.Equal(t, 2, grandChild.Depth())
	assert.Equal(t, types.MemberID("b1"), grandChild.Self())
	assert.Equal(t, types.MemberID("r1"), grandChild.Root())
	assert.True(t, grandChild.Contains("a1"))
	assert.False(t, child.Contains("b1"))

	// Deriving a child must not mutate the parent's path.
	assert.Equal(t, 1, child.Depth())
	assert.Equal(t, types.MemberID("a1"), child.Self())
}

func testLevelOfAncestors(t *testing.T) {
	p := types.NewRootPath("r1").Child("a1").Child("b1").Child("c1")

	level, ok := p.LevelOf("b1")
	require.True(t, ok)
	assert.Equal(t, 1, level)

	level, ok = p.LevelOf("a1")
	require.True(t, ok)
	assert.Equal(t, 2, level)

	level, ok = p.LevelOf("r1")
	require.True(t, ok)
	assert.Equal(t, 3, level)

	// The owner is not its own ancestor.
	_, ok = p.LevelOf("c1")
	assert.False(t, ok)

	_, ok = p.LevelOf("unknown")
	assert.False(t, ok)
}

func testAncestorChainOrder(t *testing.T) {
	p := types.NewRootPath("r1").Child("a1").Child("b1").Child("c1")

	chain := p.AncestorChain(types.MaxTreeDepth)
	require.Len(t, chain, 3)
	assert.Equal(t, types.Ancestor{ID: "b1", Level: 1}, chain[0])
	assert.Equal(t, types.Ancestor{ID: "a1", Level: 2}, chain[1])
	assert.Equal(t, types.Ancestor{ID: "r1", Level: 3}, chain[2])
}

func testAncestorChainCap(t *testing.T) {
	p := types.NewRootPath("r1").Child("a1").Child("b1").Child("c1")

	chain := p.AncestorChain(2)
	require.Len(t, chain, 2)
	assert.Equal(t, types.MemberID("b1"), chain[0].ID)
	assert.Equal(t, types.MemberID("a1"), chain[1].ID)
}

func testParseRejectsMalformed(t *testing.T) {
	_, err := types.ParseInvitePath("")
	assert.ErrorIs(t, err, types.ErrEmptyInvitePath)

	_, err = types.ParseInvitePath("r1//b1")
	assert.ErrorIs(t, err, types.ErrInvalidInvitePath)

	_, err = types.ParseInvitePath("/r1")
	assert.ErrorIs(t, err, types.ErrInvalidInvitePath)
}

func testStoredFormRoundTrips(t *testing.T) {
	p := types.NewRootPath("r1").Child("a1").Child("b1")

	parsed, err := types.ParseInvitePath(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, parsed)
}
