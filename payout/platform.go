package payout

import (
	"context"

	"github.com/uplinehq/upline/types"
)

// StaticPlatform is a PlatformAccountProvider backed by a fixed, configured
// member id. An empty id means no platform account.
type StaticPlatform struct {
	id types.MemberID
}

func NewStaticPlatform(id types.MemberID) StaticPlatform {
	return StaticPlatform{id: id}
}

func (p StaticPlatform) PlatformAccount(_ context.Context) (types.MemberID, bool) {
	return p.id, !p.id.IsZero()
}
