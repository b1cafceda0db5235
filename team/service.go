// Package team is the read side of the invitation tree: it never mutates
// anything, it only folds the materialized paths and the confirmed deposits
// into downline aggregates.
package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/storage"
	"github.com/uplinehq/upline/types"

	"golang.org/x/exp/slices"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks github.com/uplinehq/upline/team Store

var ErrMemberNotFound = func(id types.MemberID) error {
	return fmt.Errorf("member %q not found", id)
}

// Store exposes the tree and deposit queries the team aggregates are built
// from.
type Store interface {
	GetMember(ctx context.Context, id types.MemberID) (*types.Member, error)

	// ListDescendants returns every member whose path passes through the
	// given member, excluding the member themselves.
	ListDescendants(ctx context.Context, id types.MemberID) ([]*types.Member, error)

	// ConfirmedDepositTotals sums the confirmed deposit amounts per member,
	// members without confirmed deposits are absent from the result.
	ConfirmedDepositTotals(ctx context.Context, ids []types.MemberID) (map[types.MemberID]num.Decimal, error)
}

// Svc serves team queries.
type Svc struct {
	log *logging.Logger
	cfg Config

	store Store
}

func NewService(log *logging.Logger, cfg Config, store Store) *Svc {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Svc{
		log:   log,
		cfg:   cfg,
		store: store,
	}
}

// ReloadConf update the internal configuration of the service.
func (s *Svc) ReloadConf(cfg Config) {
	s.log.Info("reloading configuration")
	if s.log.GetLevel() != cfg.Level.Get() {
		s.log.Info("updating log level",
			logging.String("old", s.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		s.log.SetLevel(cfg.Level.Get())
	}

	s.cfg = cfg
}

// DirectReferralCount returns how many members the given member attached
// directly.
func (s *Svc) DirectReferralCount(ctx context.Context, id types.MemberID) (int, error) {
	member, err := s.store.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, ErrMemberNotFound(id)
		}
		return 0, err
	}
	return member.DirectReferrals, nil
}

// TeamSize counts every descendant of the member at any depth.
func (s *Svc) TeamSize(ctx context.Context, id types.MemberID) (int, error) {
	if _, err := s.store.GetMember(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, ErrMemberNotFound(id)
		}
		return 0, err
	}

	descendants, err := s.store.ListDescendants(ctx, id)
	if err != nil {
		return 0, err
	}
	return len(descendants), nil
}

// TeamPerformance sums the confirmed deposit volume of the member's
// descendants, bucketed by their level relative to the member, down to
// maxLevel. A non positive maxLevel means no cap.
func (s *Svc) TeamPerformance(ctx context.Context, id types.MemberID, maxLevel int) ([]types.LevelPerformance, error) {
	stats, err := s.TeamStats(ctx, id)
	if err != nil {
		return nil, err
	}

	if maxLevel <= 0 {
		return stats.Levels, nil
	}

	out := make([]types.LevelPerformance, 0, len(stats.Levels))
	for _, lp := range stats.Levels {
		if lp.Level > maxLevel {
			break
		}
		out = append(out, lp)
	}
	return out, nil
}

// TeamStats builds the full downline aggregate for the member: team size,
// confirmed deposit volume, and the per-level breakdown. Levels are derived
// from the descendants' materialized paths, so a single pass over the
// downline is enough.
func (s *Svc) TeamStats(ctx context.Context, id types.MemberID) (*types.TeamStats, error) {
	member, err := s.store.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMemberNotFound(id)
		}
		return nil, err
	}

	descendants, err := s.store.ListDescendants(ctx, id)
	if err != nil {
		return nil, err
	}

	ids := make([]types.MemberID, 0, len(descendants))
	for _, d := range descendants {
		ids = append(ids, d.ID)
	}

	totals := map[types.MemberID]num.Decimal{}
	if len(ids) > 0 {
		totals, err = s.store.ConfirmedDepositTotals(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	stats := &types.TeamStats{
		MemberID:        id,
		DirectReferrals: member.DirectReferrals,
		TeamSize:        len(descendants),
		DepositTotal:    num.DecimalZero(),
	}

	byLevel := map[int]*types.LevelPerformance{}
	for _, d := range descendants {
		level, ok := d.Path.LevelOf(id)
		if !ok {
			s.log.Warn("descendant path does not contain team owner",
				logging.String("member", d.ID.String()),
				logging.String("owner", id.String()),
			)
			continue
		}

		lp, ok := byLevel[level]
		if !ok {
			lp = &types.LevelPerformance{Level: level, DepositTotal: num.DecimalZero()}
			byLevel[level] = lp
		}
		lp.Members++

		if total, ok := totals[d.ID]; ok {
			lp.DepositTotal = lp.DepositTotal.Add(total)
			stats.DepositTotal = stats.DepositTotal.Add(total)
		}
	}

	stats.Levels = make([]types.LevelPerformance, 0, len(byLevel))
	for _, lp := range byLevel {
		stats.Levels = append(stats.Levels, *lp)
	}
	slices.SortFunc(stats.Levels, func(a, b types.LevelPerformance) int {
		return a.Level - b.Level
	})

	return stats, nil
}
