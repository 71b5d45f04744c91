package ui

import (
	"context"
	"testing"

	"carrental-pickup-flow/internal/domain"
	"carrental-pickup-flow/internal/flow"
	"carrental-pickup-flow/internal/i18n"
	"carrental-pickup-flow/internal/security"
	"carrental-pickup-flow/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testController(t *testing.T) *flow.Controller {
	t.Helper()
	tokens := security.NewTokenManager("render-test-secret-at-least-32-bytes!!!", 0)
	auth, err := service.NewStubAuthService("WMQ677027", "1005", tokens, 0)
	require.NoError(t, err)
	return flow.NewController(
		auth,
		service.NewMockOrderService(),
		service.NewStubPaymentService(0),
		service.NewStubVehicleService(0, 0, 68, 150),
		i18n.LocaleEN,
	)
}

func TestRender_AuthScreen(t *testing.T) {
	c := testController(t)

	out := Render(Snapshot(c, ""))

	assert.Contains(t, out, "EasyRent Pickup")
	assert.Contains(t, out, "Confirmation code")
	assert.NotContains(t, out, "  ! ")
}

func TestRender_AuthScreenInlineError(t *testing.T) {
	c := testController(t)

	out := Render(Snapshot(c, i18n.T(i18n.LocaleEN, "authError")))

	assert.Contains(t, out, "Confirmation code or phone digits do not match.")
}

func TestRender_EveryViewProducesOutput(t *testing.T) {
	ctx := context.Background()
	c := testController(t)
	require.NoError(t, c.Authenticate(ctx, "WMQ677027", "1005"))
	_, err := c.PayDeposit(ctx, "Mr. Smith")
	require.NoError(t, err)
	require.NoError(t, c.CompleteInspection())
	require.NoError(t, c.SignContract())
	require.NoError(t, c.StartRental())

	views := []domain.View{
		domain.ViewAuth,
		domain.ViewOverview,
		domain.ViewDeposit,
		domain.ViewInspection,
		domain.ViewContract,
		domain.ViewCompletion,
		domain.ViewReservationDetails,
		domain.ViewVehicleStatus,
		domain.ViewReturn,
		domain.ViewTripEnded,
	}
	for _, v := range views {
		t.Run(string(v), func(t *testing.T) {
			c.Navigate(v)
			out := Render(Snapshot(c, ""))
			assert.NotEmpty(t, out)
		})
	}
}

func TestRender_UnknownViewPanics(t *testing.T) {
	m := Model{View: domain.View("BOGUS"), Order: &domain.OrderDetails{}}

	assert.Panics(t, func() { Render(m) })
}

func TestRender_OrderViewsBeforeCheckInFallBackToAuth(t *testing.T) {
	c := testController(t)

	views := []domain.View{
		domain.ViewOverview,
		domain.ViewDeposit,
		domain.ViewInspection,
		domain.ViewContract,
		domain.ViewCompletion,
		domain.ViewReservationDetails,
		domain.ViewVehicleStatus,
		domain.ViewReturn,
		domain.ViewTripEnded,
	}
	for _, v := range views {
		t.Run(string(v), func(t *testing.T) {
			c.Navigate(v)
			var out string
			assert.NotPanics(t, func() { out = Render(Snapshot(c, "")) })
			assert.Contains(t, out, "Check in to your reservation")
		})
	}
}

func TestRender_OverviewStepMarkers(t *testing.T) {
	ctx := context.Background()
	c := testController(t)
	require.NoError(t, c.Authenticate(ctx, "WMQ677027", "1005"))
	_, err := c.PayDeposit(ctx, "Mr. Smith")
	require.NoError(t, err)
	c.Navigate(domain.ViewOverview)

	out := Render(Snapshot(c, ""))

	assert.Contains(t, out, "✓ 1. Security Deposit")
	assert.Contains(t, out, "→ 2. Vehicle Inspection")
	assert.Contains(t, out, "WMQ677027")
}

func TestRender_DepositPaidShowsReceipt(t *testing.T) {
	ctx := context.Background()
	c := testController(t)
	require.NoError(t, c.Authenticate(ctx, "WMQ677027", "1005"))
	receipt, err := c.PayDeposit(ctx, "Mr. Smith")
	require.NoError(t, err)
	c.Navigate(domain.ViewDeposit)

	out := Render(Snapshot(c, ""))

	assert.Contains(t, out, "Deposit secured")
	assert.Contains(t, out, receipt.TransactionID)
	assert.Contains(t, out, "Captured")
}

func TestRender_OverviewActiveShowsReturnStep(t *testing.T) {
	ctx := context.Background()
	c := testController(t)
	require.NoError(t, c.Authenticate(ctx, "WMQ677027", "1005"))
	_, err := c.PayDeposit(ctx, "Mr. Smith")
	require.NoError(t, err)
	require.NoError(t, c.CompleteInspection())
	require.NoError(t, c.SignContract())
	require.NoError(t, c.StartRental())

	out := Render(Snapshot(c, ""))

	assert.Contains(t, out, "Your trip is in progress")
	assert.Contains(t, out, "Return Vehicle")
}

func TestRender_LocalizedScreen(t *testing.T) {
	c := testController(t)
	c.SetLocale(i18n.LocaleZHTW)

	out := Render(Snapshot(c, ""))

	assert.Contains(t, out, "易租取車")
}
