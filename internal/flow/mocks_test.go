package flow

import (
	"context"

	"carrental-pickup-flow/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) CheckIn(ctx context.Context, confirmationCode, phoneDigits string) (string, error) {
	args := m.Called(ctx, confirmationCode, phoneDigits)
	return args.String(0), args.Error(1)
}

// MockOrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) FetchOrder(ctx context.Context) (*domain.OrderDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderDetails), args.Error(1)
}

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CaptureDeposit(ctx context.Context, cardholderName string, order *domain.OrderDetails) (*domain.DepositReceipt, error) {
	args := m.Called(ctx, cardholderName, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepositReceipt), args.Error(1)
}

// MockVehicleService
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) SendCommand(ctx context.Context, cmd domain.VehicleCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
func (m *MockVehicleService) SyncStats(ctx context.Context, currentOdometer int) (domain.VehicleStats, error) {
	args := m.Called(ctx, currentOdometer)
	return args.Get(0).(domain.VehicleStats), args.Error(1)
}
func (m *MockVehicleService) CheckReturnLocation(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
