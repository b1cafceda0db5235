package referral

import (
	"github.com/uplinehq/upline/config/encoding"
	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/types"
)

// namedLogger is the identifier for package and should ideally match the package name
// this is simply emitted as a hierarchical label e.g. 'api.grpc'.
const namedLogger = "referral"

// Config represents the configuration of the referral tree engine.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	// MaxDirectReferrals caps the direct children of a single inviter.
	MaxDirectReferrals int

	// MaxTreeDepth caps the number of ancestors above any member.
	MaxTreeDepth int

	// InviteCodeLength is the length of generated invite codes.
	InviteCodeLength int
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:              encoding.LogLevel{Level: logging.InfoLevel},
		MaxDirectReferrals: types.MaxDirectReferrals,
		MaxTreeDepth:       types.MaxTreeDepth,
		InviteCodeLength:   8,
	}
}
