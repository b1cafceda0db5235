// Package memory is a mutex-guarded, in-process implementation of every
// store interface the engines depend on. It backs the test suites and local
// development, the production deployment uses the sqlstore package.
//
// Stored values are never mutated in place: writes replace the stored clone
// and reads hand out clones. That is what lets WithTransaction roll back
// with shallow map copies.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/uplinehq/upline/banking"
	"github.com/uplinehq/upline/ledger"
	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/rates"
	"github.com/uplinehq/upline/referral"
	"github.com/uplinehq/upline/storage"
	"github.com/uplinehq/upline/team"
	"github.com/uplinehq/upline/types"
)

var (
	_ referral.MemberStore = (*Store)(nil)
	_ banking.DepositStore = (*Store)(nil)
	_ ledger.Store         = (*Store)(nil)
	_ rates.HistoryStore   = (*Store)(nil)
	_ team.Store           = (*Store)(nil)
)

type txMarker struct{}

type Store struct {
	mu sync.RWMutex

	members      map[types.MemberID]*types.Member
	byInviteCode map[string]types.MemberID

	deposits map[types.DepositID]*types.Deposit
	byTxHash map[types.TxHash]types.DepositID

	commissions map[types.DepositID][]*types.CommissionRecord
	flows       []*types.FundFlow
	assets      map[types.MemberID]*types.Asset

	rateChanges []*types.RateChange
}

func NewStore() *Store {
	return &Store{
		members:      map[types.MemberID]*types.Member{},
		byInviteCode: map[string]types.MemberID{},
		deposits:     map[types.DepositID]*types.Deposit{},
		byTxHash:     map[types.TxHash]types.DepositID{},
		commissions:  map[types.DepositID][]*types.CommissionRecord{},
		assets:       map[types.MemberID]*types.Asset{},
	}
}

func inTransaction(ctx context.Context) bool {
	return ctx.Value(txMarker{}) != nil
}

// lock acquires the store mutex unless the context already runs inside
// WithTransaction, which holds it for the whole callback.
func (s *Store) lock(ctx context.Context) func() {
	if inTransaction(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) rlock(ctx context.Context) func() {
	if inTransaction(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// WithTransaction runs fn with the store exclusively locked. When fn
// errors, every map is restored to its pre-transaction snapshot and the
// error is passed through unchanged.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTransaction(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()

	if err := fn(context.WithValue(ctx, txMarker{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	members      map[types.MemberID]*types.Member
	byInviteCode map[string]types.MemberID
	deposits     map[types.DepositID]*types.Deposit
	byTxHash     map[types.TxHash]types.DepositID
	commissions  map[types.DepositID][]*types.CommissionRecord
	flows        []*types.FundFlow
	assets       map[types.MemberID]*types.Asset
	rateChanges  []*types.RateChange
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		members:      copyMap(s.members),
		byInviteCode: copyMap(s.byInviteCode),
		deposits:     copyMap(s.deposits),
		byTxHash:     copyMap(s.byTxHash),
		commissions:  copyCommissions(s.commissions),
		flows:        s.flows[:len(s.flows):len(s.flows)],
		assets:       copyMap(s.assets),
		rateChanges:  s.rateChanges[:len(s.rateChanges):len(s.rateChanges)],
	}
}

func (s *Store) restore(snap snapshot) {
	s.members = snap.members
	s.byInviteCode = snap.byInviteCode
	s.deposits = snap.deposits
	s.byTxHash = snap.byTxHash
	s.commissions = snap.commissions
	s.flows = snap.flows
	s.assets = snap.assets
	s.rateChanges = snap.rateChanges
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	c := make(map[K]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func copyCommissions(m map[types.DepositID][]*types.CommissionRecord) map[types.DepositID][]*types.CommissionRecord {
	c := make(map[types.DepositID][]*types.CommissionRecord, len(m))
	for k, v := range m {
		c[k] = v[:len(v):len(v)]
	}
	return c
}

// --- members ---

func (s *Store) GetMember(ctx context.Context, id types.MemberID) (*types.Member, error) {
	defer s.rlock(ctx)()

	member, ok := s.members[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return member.Clone(), nil
}

func (s *Store) GetMemberByInviteCode(ctx context.Context, code string) (*types.Member, error) {
	defer s.rlock(ctx)()

	id, ok := s.byInviteCode[code]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return s.members[id].Clone(), nil
}

func (s *Store) AddMember(ctx context.Context, member *types.Member) error {
	defer s.lock(ctx)()
	return s.addMember(member)
}

func (s *Store) addMember(member *types.Member) error {
	if _, ok := s.members[member.ID]; ok {
		return storage.ErrDuplicateKey
	}
	if _, ok := s.byInviteCode[member.InviteCode]; ok {
		return storage.ErrDuplicateKey
	}
	s.members[member.ID] = member.Clone()
	s.byInviteCode[member.InviteCode] = member.ID
	return nil
}

func (s *Store) UpdateMember(ctx context.Context, member *types.Member) error {
	defer s.lock(ctx)()
	return s.updateMember(member)
}

func (s *Store) updateMember(member *types.Member) error {
	existing, ok := s.members[member.ID]
	if !ok {
		return storage.ErrNotFound
	}
	if existing.InviteCode != member.InviteCode {
		delete(s.byInviteCode, existing.InviteCode)
		s.byInviteCode[member.InviteCode] = member.ID
	}
	s.members[member.ID] = member.Clone()
	return nil
}

// AttachMember inserts the child and increments the inviter's counter under
// one lock acquisition, re-checking the cap against the stored counter so a
// caller racing on a stale read cannot overshoot it.
func (s *Store) AttachMember(ctx context.Context, child *types.Member, inviterID types.MemberID, maxDirectReferrals int) error {
	defer s.lock(ctx)()

	inviter, ok := s.members[inviterID]
	if !ok {
		return storage.ErrNotFound
	}
	if inviter.DirectReferrals >= maxDirectReferrals {
		return storage.ErrReferralCapExceeded
	}

	if err := s.addMember(child); err != nil {
		return err
	}

	bumped := inviter.Clone()
	bumped.DirectReferrals++
	s.members[inviterID] = bumped

	return nil
}

func (s *Store) ListDescendants(ctx context.Context, id types.MemberID) ([]*types.Member, error) {
	defer s.rlock(ctx)()

	var out []*types.Member
	for _, member := range s.members {
		if member.ID == id {
			continue
		}
		if member.Path.Contains(id) {
			out = append(out, member.Clone())
		}
	}
	return out, nil
}

// --- deposits ---

func (s *Store) GetDeposit(ctx context.Context, id types.DepositID) (*types.Deposit, error) {
	defer s.rlock(ctx)()

	deposit, ok := s.deposits[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return deposit.Clone(), nil
}

func (s *Store) GetDepositByTxHash(ctx context.Context, hash types.TxHash) (*types.Deposit, error) {
	defer s.rlock(ctx)()

	id, ok := s.byTxHash[hash]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return s.deposits[id].Clone(), nil
}

func (s *Store) AddDeposit(ctx context.Context, deposit *types.Deposit) error {
	defer s.lock(ctx)()

	if _, ok := s.deposits[deposit.ID]; ok {
		return storage.ErrDuplicateKey
	}
	if _, ok := s.byTxHash[deposit.TxHash]; ok {
		return storage.ErrDuplicateKey
	}
	s.deposits[deposit.ID] = deposit.Clone()
	s.byTxHash[deposit.TxHash] = deposit.ID
	return nil
}

func (s *Store) FinalizeDeposit(ctx context.Context, id types.DepositID, status types.DepositStatus, actor string, at time.Time) (*types.Deposit, error) {
	defer s.lock(ctx)()

	deposit, ok := s.deposits[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if deposit.IsFinalized() {
		return nil, storage.ErrAlreadyFinalized
	}

	final := deposit.Clone()
	final.Status = status
	final.ConfirmedAt = at
	final.ConfirmedBy = actor
	s.deposits[id] = final

	return final.Clone(), nil
}

func (s *Store) ConfirmedDepositTotals(ctx context.Context, ids []types.MemberID) (map[types.MemberID]num.Decimal, error) {
	defer s.rlock(ctx)()

	wanted := make(map[types.MemberID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	totals := map[types.MemberID]num.Decimal{}
	for _, deposit := range s.deposits {
		if deposit.Status != types.DepositStatusConfirmed {
			continue
		}
		if _, ok := wanted[deposit.MemberID]; !ok {
			continue
		}
		total, ok := totals[deposit.MemberID]
		if !ok {
			total = num.DecimalZero()
		}
		totals[deposit.MemberID] = total.Add(deposit.Amount)
	}
	return totals, nil
}

// --- ledger ---

func (s *Store) HasCommissionsForDeposit(ctx context.Context, id types.DepositID) (bool, error) {
	defer s.rlock(ctx)()
	return len(s.commissions[id]) > 0, nil
}

func (s *Store) AddCommission(ctx context.Context, record *types.CommissionRecord) error {
	defer s.lock(ctx)()
	s.commissions[record.DepositID] = append(s.commissions[record.DepositID], record.Clone())
	return nil
}

func (s *Store) ListCommissionsForDeposit(ctx context.Context, id types.DepositID) ([]*types.CommissionRecord, error) {
	defer s.rlock(ctx)()

	records := s.commissions[id]
	out := make([]*types.CommissionRecord, 0, len(records))
	for _, r := range records {
		out = append(out, r.Clone())
	}
	return out, nil
}

func (s *Store) AddFundFlow(ctx context.Context, flow *types.FundFlow) error {
	defer s.lock(ctx)()
	s.flows = append(s.flows, flow.Clone())
	return nil
}

func (s *Store) ListFundFlows(ctx context.Context) ([]*types.FundFlow, error) {
	defer s.rlock(ctx)()

	out := make([]*types.FundFlow, 0, len(s.flows))
	for _, f := range s.flows {
		out = append(out, f.Clone())
	}
	return out, nil
}

func (s *Store) GetAsset(ctx context.Context, id types.MemberID) (*types.Asset, error) {
	defer s.rlock(ctx)()

	asset, ok := s.assets[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return asset.Clone(), nil
}

func (s *Store) CreditAsset(ctx context.Context, id types.MemberID, amount num.Decimal) error {
	defer s.lock(ctx)()

	asset, ok := s.assets[id]
	if !ok {
		asset = types.NewAsset(id)
	}

	next := asset.Clone()
	next.AvailableBalance = next.AvailableBalance.Add(amount)
	next.TotalCommission = next.TotalCommission.Add(amount)
	next.MonthlyIncome = next.MonthlyIncome.Add(amount)
	next.UpdatedAt = time.Now()
	s.assets[id] = next

	return nil
}

func (s *Store) DebitAsset(ctx context.Context, id types.MemberID, amount num.Decimal) error {
	defer s.lock(ctx)()

	asset, ok := s.assets[id]
	if !ok || asset.AvailableBalance.LessThan(amount) {
		return storage.ErrInsufficientBalance
	}

	next := asset.Clone()
	next.AvailableBalance = next.AvailableBalance.Sub(amount)
	next.UpdatedAt = time.Now()
	s.assets[id] = next

	return nil
}

// --- rate history ---

func (s *Store) AddRateChange(ctx context.Context, change *types.RateChange) error {
	defer s.lock(ctx)()
	s.rateChanges = append(s.rateChanges, change.Clone())
	return nil
}

func (s *Store) ListRateChanges(ctx context.Context) ([]*types.RateChange, error) {
	defer s.rlock(ctx)()

	out := make([]*types.RateChange, 0, len(s.rateChanges))
	for _, c := range s.rateChanges {
		out = append(out, c.Clone())
	}
	return out, nil
}
