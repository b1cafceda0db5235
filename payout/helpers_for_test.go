package payout_test

import (
	"testing"
	"time"

	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/payout"
	"github.com/uplinehq/upline/payout/mocks"
	"github.com/uplinehq/upline/types"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type testEngine struct {
	*payout.Engine

	ctrl        *gomock.Controller
	deposits    *mocks.MockDepositStore
	commissions *mocks.MockCommissionChecker
	tree        *mocks.MockChainResolver
	rates       *mocks.MockRateSource
	platform    *mocks.MockPlatformAccountProvider
}

func newTestEngine(t *testing.T) *testEngine {
	t.Helper()

	ctrl := gomock.NewController(t)
	deposits := mocks.NewMockDepositStore(ctrl)
	commissions := mocks.NewMockCommissionChecker(ctrl)
	tree := mocks.NewMockChainResolver(ctrl)
	rateSource := mocks.NewMockRateSource(ctrl)
	platform := mocks.NewMockPlatformAccountProvider(ctrl)

	engine, err := payout.New(
		logging.NewTestLogger(),
		payout.NewDefaultConfig(),
		deposits,
		commissions,
		tree,
		rateSource,
		platform,
	)
	require.NoError(t, err)

	return &testEngine{
		Engine:      engine,
		ctrl:        ctrl,
		deposits:    deposits,
		commissions: commissions,
		tree:        tree,
		rates:       rateSource,
		platform:    platform,
	}
}

func defaultTable() types.RateTable {
	return types.RateTable{
		num.MustDecimalFromString("0.2"),
		num.MustDecimalFromString("0.08"),
		num.MustDecimalFromString("0.08"),
		num.MustDecimalFromString("0.06"),
		num.MustDecimalFromString("0.05"),
		num.MustDecimalFromString("0.05"),
		num.MustDecimalFromString("0.05"),
	}
}

func confirmedDeposit(id types.DepositID, member types.MemberID, amount string) *types.Deposit {
	return &types.Deposit{
		ID:        id,
		MemberID:  member,
		Amount:    num.MustDecimalFromString(amount),
		TxHash:    types.TxHash("tx-" + id.String()),
		Status:    types.DepositStatusConfirmed,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}
