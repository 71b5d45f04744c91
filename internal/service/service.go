package service

import (
	"context"

	"carrental-pickup-flow/internal/domain"
)

// AuthService checks a reservation's check-in credentials and issues a
// session token on success.
type AuthService interface {
	CheckIn(ctx context.Context, confirmationCode, phoneDigits string) (string, error)
}

// OrderService fetches the order aggregate for an authenticated session.
type OrderService interface {
	FetchOrder(ctx context.Context) (*domain.OrderDetails, error)
}

// PaymentService captures the deposit pre-authorization.
type PaymentService interface {
	CaptureDeposit(ctx context.Context, cardholderName string, order *domain.OrderDetails) (*domain.DepositReceipt, error)
}

// VehicleService talks to the vehicle computer: remote commands, stat
// snapshots and the return-location check.
type VehicleService interface {
	SendCommand(ctx context.Context, cmd domain.VehicleCommand) error
	SyncStats(ctx context.Context, currentOdometer int) (domain.VehicleStats, error)
	CheckReturnLocation(ctx context.Context) (bool, error)
}
