package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// MaxDirectReferrals caps how many members a single inviter can attach
	// directly underneath themselves.
	MaxDirectReferrals = 5

	// MaxTreeDepth caps how deep the invitation tree can grow. A member at
	// maximum depth has MaxTreeDepth ancestors above them.
	MaxTreeDepth = 9
)

// pathSeparator is the delimiter used for the stored form of an invite path.
const pathSeparator = "/"

var (
	ErrEmptyInvitePath   = errors.New("invite path must contain at least the member's own id")
	ErrInvalidInvitePath = errors.New("invalid invite path")
)

// MemberID is the identifier of a member of the invitation tree.
type MemberID string

func (id MemberID) String() string {
	return string(id)
}

func (id MemberID) IsZero() bool {
	return len(id) == 0
}

// InvitePath is the materialized position of a member in the invitation
// tree: the ordered sequence of ancestor ids from the root down to, and
// including, the member itself. A path is only ever constructed by appending
// a member to its inviter's path, never assembled independently.
type InvitePath []MemberID

// NewRootPath returns the path of a member with no inviter.
func NewRootPath(id MemberID) InvitePath {
	return InvitePath{id}
}

// ParseInvitePath parses the stored delimited form of a path.
func ParseInvitePath(s string) (InvitePath, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInvitePath
	}
	segments := strings.Split(s, pathSeparator)
	path := make(InvitePath, 0, len(segments))
	for _, seg := range segments {
		if len(seg) == 0 {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidInvitePath, s)
		}
		path = append(path, MemberID(seg))
	}
	return path, nil
}

// Child derives the path of a new member attached under this path's owner.
func (p InvitePath) Child(id MemberID) InvitePath {
	child := make(InvitePath, len(p), len(p)+1)
	copy(child, p)
	return append(child, id)
}

// Self returns the owner of the path.
func (p InvitePath) Self() MemberID {
	return p[len(p)-1]
}

// Root returns the topmost ancestor of the path's owner, which is the owner
// itself for root members.
func (p InvitePath) Root() MemberID {
	return p[0]
}

// Depth returns the number of ancestors above the path's owner. Root members
// have depth 0.
func (p InvitePath) Depth() int {
	return len(p) - 1
}

// Contains reports whether the given member is the owner or one of its
// ancestors.
func (p InvitePath) Contains(id MemberID) bool {
	for _, segment := range p {
		if segment == id {
			return true
		}
	}
	return false
}

// LevelOf returns the level of the given ancestor relative to the path's
// owner: the direct inviter is level 1. The second value is false when the
// member is not a strict ancestor.
func (p InvitePath) LevelOf(ancestor MemberID) (int, bool) {
	for i := len(p) - 2; i >= 0; i-- {
		if p[i] == ancestor {
			return len(p) - 1 - i, true
		}
	}
	return 0, false
}

// AncestorChain returns the owner's ancestors ordered nearest first, capped
// at maxLevels. Root members yield an empty chain.
func (p InvitePath) AncestorChain(maxLevels int) []Ancestor {
	chain := make([]Ancestor, 0, maxLevels)
	for i := len(p) - 2; i >= 0; i-- {
		level := len(p) - 1 - i
		if level > maxLevels {
			break
		}
		chain = append(chain, Ancestor{ID: p[i], Level: level})
	}
	return chain
}

func (p InvitePath) Clone() InvitePath {
	c := make(InvitePath, len(p))
	copy(c, p)
	return c
}

// String renders the stored delimited form.
func (p InvitePath) String() string {
	segments := make([]string, 0, len(p))
	for _, id := range p {
		segments = append(segments, string(id))
	}
	return strings.Join(segments, pathSeparator)
}

// Ancestor is one entry of an ancestor chain.
type Ancestor struct {
	ID    MemberID
	Level int
}

// Member is a participant of the invitation tree.
type Member struct {
	ID              MemberID
	InviterID       MemberID // zero for root members
	Path            InvitePath
	InviteCode      string
	DirectReferrals int
	Activated       bool
	JoinedAt        time.Time
}

func (m *Member) IsRoot() bool {
	return m.InviterID.IsZero()
}

func (m *Member) Clone() *Member {
	c := *m
	c.Path = m.Path.Clone()
	return &c
}
