// Package storage declares the sentinel errors shared by every store
// implementation. Engines map them onto their own typed errors.
package storage

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when a write violates a uniqueness
	// constraint, e.g. an invite code or deposit tx hash already in use.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInsufficientBalance is returned by atomic debits when the member's
	// available balance does not cover the requested amount.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAlreadyFinalized is returned by guarded deposit transitions when
	// the deposit already left the pending status.
	ErrAlreadyFinalized = errors.New("deposit already finalized")

	// ErrReferralCapExceeded is returned by guarded attachments when the
	// inviter's direct-referral counter is already at the cap.
	ErrReferralCapExceeded = errors.New("direct referral cap reached")
)
