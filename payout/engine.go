// Package payout turns one confirmed deposit into a payout plan: one
// level-weighted instruction per configured level, plus the charity and
// startup pool allocations. Computation is pure; applying the plan is the
// ledger's job.
package payout

import (
	"context"
	"errors"
	"fmt"

	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/storage"
	"github.com/uplinehq/upline/types"
)

var (
	ErrDepositNotFound = func(id types.DepositID) error {
		return fmt.Errorf("deposit %q not found", id)
	}

	// ErrDepositNotConfirmed rejects computing payouts for a deposit that is
	// still pending or was rejected.
	ErrDepositNotConfirmed = errors.New("deposit is not in confirmed status")

	// ErrAlreadyProcessed is an idempotency conflict, not a failure: the
	// deposit's commissions have already been generated. Callers may treat
	// it as a successful no-op.
	ErrAlreadyProcessed = errors.New("commissions already generated for this deposit")
)

type Engine struct {
	log *logging.Logger
	cfg Config

	deposits    DepositStore
	commissions CommissionChecker
	tree        ChainResolver
	rates       RateSource
	platform    PlatformAccountProvider

	charityRate num.Decimal
	startupRate num.Decimal
}

func New(
	log *logging.Logger,
	cfg Config,
	deposits DepositStore,
	commissions CommissionChecker,
	tree ChainResolver,
	rates RateSource,
	platform PlatformAccountProvider,
) (*Engine, error) {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	charity, err := cfg.charityRate()
	if err != nil {
		return nil, fmt.Errorf("unable to load charity rate: %w", err)
	}
	startup, err := cfg.startupRate()
	if err != nil {
		return nil, fmt.Errorf("unable to load startup rate: %w", err)
	}

	if platform == nil {
		platform = NewStaticPlatform(types.MemberID(cfg.PlatformAccount))
	}

	return &Engine{
		log:         log,
		cfg:         cfg,
		deposits:    deposits,
		commissions: commissions,
		tree:        tree,
		rates:       rates,
		platform:    platform,
		charityRate: charity,
		startupRate: startup,
	}, nil
}

// ReloadConf is used in order to reload the internal configuration of
// the payout engine.
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

// Compute builds the payout plan for a confirmed deposit. The rate table is
// snapshotted once at the start so a concurrent schedule update cannot leak
// into the middle of the calculation. Levels beyond the depositor's chain
// route to the platform account; with no platform account configured the
// amount is tracked as unassigned rather than lost.
func (e *Engine) Compute(ctx context.Context, depositID types.DepositID) (*types.PayoutPlan, error) {
	deposit, err := e.deposits.GetDeposit(ctx, depositID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDepositNotFound(depositID)
		}
		return nil, err
	}

	if deposit.Status != types.DepositStatusConfirmed {
		return nil, ErrDepositNotConfirmed
	}

	processed, err := e.commissions.HasCommissionsForDeposit(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if processed {
		return nil, ErrAlreadyProcessed
	}

	table := e.rates.Rates()

	chain, err := e.tree.AncestorChain(ctx, deposit.MemberID, table.Levels())
	if err != nil {
		return nil, err
	}
	byLevel := make(map[int]types.MemberID, len(chain))
	for _, ancestor := range chain {
		byLevel[ancestor.Level] = ancestor.ID
	}

	platformID, hasPlatform := e.platform.PlatformAccount(ctx)

	plan := &types.PayoutPlan{
		DepositID:     deposit.ID,
		SourceID:      deposit.MemberID,
		DepositAmount: deposit.Amount,
		Instructions:  make([]types.PayoutInstruction, 0, table.Levels()),
		Unassigned:    num.DecimalZero(),
	}

	for level := 1; level <= table.Levels(); level++ {
		amount := num.RoundCents(deposit.Amount.Mul(table.Rate(level)))
		if amount.IsZero() {
			continue
		}

		target, ok := byLevel[level]
		if !ok {
			if !hasPlatform {
				// No recipient at all. Track the amount so it is not lost,
				// but do not fail the deposit for this alone.
				plan.Unassigned = plan.Unassigned.Add(amount)
				e.log.Warn("no platform account for unreachable level, amount left unassigned",
					logging.String("deposit", deposit.ID.String()),
					logging.Int("level", level),
					logging.Decimal("amount", amount),
				)
				continue
			}
			target = platformID
		}

		plan.Instructions = append(plan.Instructions, types.PayoutInstruction{
			TargetID: target,
			Level:    level,
			Amount:   amount,
		})
	}

	plan.CharityAmount = num.RoundCents(deposit.Amount.Mul(e.charityRate))
	plan.StartupAmount = num.RoundCents(deposit.Amount.Mul(e.startupRate))

	if e.log.IsDebug() {
		e.log.Debug("payout plan computed",
			logging.String("deposit", deposit.ID.String()),
			logging.Int("instructions", len(plan.Instructions)),
			logging.Decimal("commission", plan.TotalCommission()),
			logging.Decimal("charity", plan.CharityAmount),
			logging.Decimal("startup", plan.StartupAmount),
			logging.Decimal("unassigned", plan.Unassigned),
		)
	}

	return plan, nil
}
