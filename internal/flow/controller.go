// Package flow holds the view-state controller for the pickup/return
// experience: the current screen, the order aggregate, and the guarded
// transitions between screens. Screens never talk to each other; every
// intent passes through the controller.
package flow

import (
	"context"
	"errors"

	"carrental-pickup-flow/internal/domain"
	"carrental-pickup-flow/internal/i18n"
	"carrental-pickup-flow/internal/logger"
	"carrental-pickup-flow/internal/service"
)

var (
	ErrOrderNotLoaded      = errors.New("no order loaded for this session")
	ErrDepositNotPaid      = errors.New("deposit has not been paid")
	ErrInspectionPending   = errors.New("vehicle inspection has not been completed")
	ErrContractNotSigned   = errors.New("rental contract has not been signed")
	ErrRentalNotActive     = errors.New("rental is not active")
	ErrNotAtReturnLocation = errors.New("vehicle is not at the return location")
)

// Controller owns the session state. All mutation of the order aggregate
// happens here, synchronously, in response to a single user intent at a
// time.
type Controller struct {
	auth     service.AuthService
	orders   service.OrderService
	payments service.PaymentService
	vehicle  service.VehicleService

	locale i18n.Locale

	view                domain.View
	order               *domain.OrderDetails
	sessionToken        string
	receipt             *domain.DepositReceipt
	inspectionCompleted bool
	contractSigned      bool
	tripEnded           bool
}

func NewController(auth service.AuthService, orders service.OrderService, payments service.PaymentService, vehicle service.VehicleService, locale i18n.Locale) *Controller {
	return &Controller{
		auth:     auth,
		orders:   orders,
		payments: payments,
		vehicle:  vehicle,
		locale:   locale,
		view:     domain.ViewAuth,
	}
}

func (c *Controller) View() domain.View               { return c.view }
func (c *Controller) Order() *domain.OrderDetails     { return c.order }
func (c *Controller) Receipt() *domain.DepositReceipt { return c.receipt }
func (c *Controller) InspectionCompleted() bool       { return c.inspectionCompleted }
func (c *Controller) ContractSigned() bool            { return c.contractSigned }
func (c *Controller) TripEnded() bool                 { return c.tripEnded }
func (c *Controller) Locale() i18n.Locale             { return c.locale }

// SetLocale switches the display language for subsequent renders.
func (c *Controller) SetLocale(l i18n.Locale) {
	if i18n.IsSupported(l) {
		c.locale = l
	}
}

// Steps builds the overview step list for the current session state.
func (c *Controller) Steps() []Step {
	return BuildSteps(c.order, c.inspectionCompleted, c.contractSigned, c.locale)
}

// Authenticate checks the reservation in. On success the order is fetched
// lazily (first success only) and the view moves to the overview; on
// failure the view stays on AUTH and the error is surfaced inline.
func (c *Controller) Authenticate(ctx context.Context, confirmationCode, phoneDigits string) error {
	token, err := c.auth.CheckIn(ctx, confirmationCode, phoneDigits)
	if err != nil {
		return err
	}
	c.sessionToken = token

	if c.order == nil {
		order, err := c.orders.FetchOrder(ctx)
		if err != nil {
			return err
		}
		c.order = order
	}

	logger.Info("Session checked in", "order_number", c.order.OrderNumber)
	c.view = domain.ViewOverview
	return nil
}

// PayDeposit captures the deposit through the payment collaborator and
// marks the order paid. A name-mismatch error is recoverable; the failed
// attempt leaves no state behind.
func (c *Controller) PayDeposit(ctx context.Context, cardholderName string) (*domain.DepositReceipt, error) {
	if c.order == nil {
		return nil, ErrOrderNotLoaded
	}
	receipt, err := c.payments.CaptureDeposit(ctx, cardholderName, c.order)
	if err != nil {
		return nil, err
	}
	c.receipt = receipt
	c.MarkDepositPaid()
	return receipt, nil
}

// MarkDepositPaid sets the paid flag on the loaded order. Calling it with
// no order loaded is a silent no-op.
func (c *Controller) MarkDepositPaid() {
	if c.order == nil {
		return
	}
	c.order.IsDepositPaid = true
}

// CompleteInspection records the submitted inspection and moves on to the
// contract. The deposit must have been paid first.
func (c *Controller) CompleteInspection() error {
	if c.order == nil {
		return ErrOrderNotLoaded
	}
	if !c.order.IsDepositPaid {
		return ErrDepositNotPaid
	}
	c.inspectionCompleted = true
	c.view = domain.ViewContract
	return nil
}

// SignContract records the signature and shows the completion screen.
func (c *Controller) SignContract() error {
	if c.order == nil {
		return ErrOrderNotLoaded
	}
	if !c.inspectionCompleted {
		return ErrInspectionPending
	}
	c.contractSigned = true
	c.view = domain.ViewCompletion
	logger.Info("Contract signed", "contract_number", c.order.Contract.Number)
	return nil
}

// StartRental activates the rental. The contract must be signed; the
// controller checks this itself rather than trusting the caller's UI.
func (c *Controller) StartRental() error {
	if c.order == nil {
		return ErrOrderNotLoaded
	}
	if !c.contractSigned {
		return ErrContractNotSigned
	}
	c.order.IsRentalActive = true
	c.view = domain.ViewOverview
	logger.Info("Rental started", "order_number", c.order.OrderNumber)
	return nil
}

// BeginReturn opens the return flow for an active rental.
func (c *Controller) BeginReturn() error {
	if c.order == nil {
		return ErrOrderNotLoaded
	}
	if !c.order.IsRentalActive {
		return ErrRentalNotActive
	}
	c.view = domain.ViewReturn
	return nil
}

// CompleteReturn verifies the return location, syncs the end-of-trip
// stats into the order and ends the trip.
func (c *Controller) CompleteReturn(ctx context.Context) error {
	if c.order == nil {
		return ErrOrderNotLoaded
	}
	if !c.order.IsRentalActive {
		return ErrRentalNotActive
	}

	ok, err := c.vehicle.CheckReturnLocation(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAtReturnLocation
	}

	stats, err := c.vehicle.SyncStats(ctx, c.order.Vehicle.Odometer)
	if err != nil {
		return err
	}
	c.order.Vehicle.FuelLevel = stats.FuelLevel
	c.order.Vehicle.Odometer = stats.Odometer
	c.order.IsRentalActive = false
	c.tripEnded = true
	c.view = domain.ViewTripEnded
	logger.Info("Trip ended", "order_number", c.order.OrderNumber, "odometer", stats.Odometer)
	return nil
}

// ToggleLock flips the vehicle lock state through the remote-control
// collaborator.
func (c *Controller) ToggleLock(ctx context.Context) error {
	if c.order == nil {
		return ErrOrderNotLoaded
	}
	cmd := domain.CommandLock
	if c.order.Vehicle.IsLocked {
		cmd = domain.CommandUnlock
	}
	if err := c.vehicle.SendCommand(ctx, cmd); err != nil {
		return err
	}
	c.order.Vehicle.IsLocked = !c.order.Vehicle.IsLocked
	return nil
}

// SendVehicleCommand forwards a stateless remote command (flash, honk).
func (c *Controller) SendVehicleCommand(ctx context.Context, cmd domain.VehicleCommand) error {
	if c.order == nil {
		return ErrOrderNotLoaded
	}
	return c.vehicle.SendCommand(ctx, cmd)
}

// Navigate transitions unconditionally. It backs out of detail screens
// and enters the read-only ones; the guarded operations above are the
// only way to make forward progress.
func (c *Controller) Navigate(view domain.View) {
	c.view = view
}
