package handler

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/slotforge/internal/catalog"
	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/pool"
	"github.com/osse101/slotforge/internal/rtp"
	"github.com/osse101/slotforge/internal/simulation"
)

// MockSlotService mocks SlotService
type MockSlotService struct {
	mock.Mock
}

func (m *MockSlotService) Spin(ctx context.Context, baseBet decimal.Decimal) (domain.SpinResult, error) {
	args := m.Called(ctx, baseBet)
	return args.Get(0).(domain.SpinResult), args.Error(1)
}

func (m *MockSlotService) BuildPools(ctx context.Context, target int, progress func(pool.Progress)) (*pool.BuildResult, error) {
	args := m.Called(ctx, target, progress)
	res, _ := args.Get(0).(*pool.BuildResult)
	return res, args.Error(1)
}

func (m *MockSlotService) PoolStatuses() []domain.PoolStatus {
	return m.Called().Get(0).([]domain.PoolStatus)
}

func (m *MockSlotService) IsReady() bool {
	return m.Called().Bool(0)
}

func (m *MockSlotService) LoadPaytable(pt *catalog.Paytable) error {
	return m.Called(pt).Error(0)
}

func (m *MockSlotService) Theoretical() domain.RTPBreakdown {
	return m.Called().Get(0).(domain.RTPBreakdown)
}

func (m *MockSlotService) Actual(ctx context.Context) (domain.RTPBreakdown, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RTPBreakdown), args.Error(1)
}

func (m *MockSlotService) Compare(ctx context.Context) (rtp.Comparison, error) {
	args := m.Called(ctx)
	return args.Get(0).(rtp.Comparison), args.Error(1)
}

func (m *MockSlotService) Distribution(ctx context.Context, n, bins int, seed uint64) (rtp.DistributionReport, error) {
	args := m.Called(ctx, n, bins, seed)
	return args.Get(0).(rtp.DistributionReport), args.Error(1)
}

func (m *MockSlotService) Simulate(ctx context.Context, opts simulation.Options) (*simulation.Report, error) {
	args := m.Called(ctx, opts)
	res, _ := args.Get(0).(*simulation.Report)
	return res, args.Error(1)
}
