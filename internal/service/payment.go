package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"carrental-pickup-flow/internal/domain"
	"carrental-pickup-flow/internal/logger"

	"github.com/google/uuid"
)

var ErrNameMismatch = errors.New("cardholder name does not match the main driver")

// MatchCardholderName reports whether the cardholder name is accepted for
// the customer on the order: trimmed, case-insensitive equality, or both
// names containing "smith" (demo leniency for the fixed mock customer).
func MatchCardholderName(cardholderName, customerName string) bool {
	cardholder := strings.ToLower(strings.TrimSpace(cardholderName))
	customer := strings.ToLower(strings.TrimSpace(customerName))
	if cardholder == customer {
		return true
	}
	return strings.Contains(cardholder, "smith") && strings.Contains(customer, "smith")
}

type stubPaymentService struct {
	delay time.Duration
}

func NewStubPaymentService(delay time.Duration) PaymentService {
	return &stubPaymentService{delay: delay}
}

func (s *stubPaymentService) CaptureDeposit(ctx context.Context, cardholderName string, order *domain.OrderDetails) (*domain.DepositReceipt, error) {
	logger.CollaboratorCall("payment", "CaptureDeposit", "amount", order.Deposit.Amount)
	pause(s.delay)

	if !MatchCardholderName(cardholderName, order.Customer.Name) {
		logger.CollaboratorResult("payment", "CaptureDeposit", ErrNameMismatch)
		return nil, ErrNameMismatch
	}

	receipt := &domain.DepositReceipt{
		TransactionID: uuid.New().String(),
		Amount:        order.Deposit.Amount,
		Currency:      order.Deposit.Currency,
		Status:        "Captured",
	}
	logger.CollaboratorResult("payment", "CaptureDeposit", nil, "transaction_id", receipt.TransactionID)
	return receipt, nil
}
