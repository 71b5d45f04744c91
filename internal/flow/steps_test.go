package flow

import (
	"testing"

	"carrental-pickup-flow/internal/domain"
	"carrental-pickup-flow/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderWith(depositPaid, active bool) *domain.OrderDetails {
	return &domain.OrderDetails{IsDepositPaid: depositPaid, IsRentalActive: active}
}

func TestBuildSteps_NilOrder(t *testing.T) {
	assert.Nil(t, BuildSteps(nil, false, false, i18n.LocaleEN))
}

func TestBuildSteps_InspectionGate(t *testing.T) {
	tests := []struct {
		name                string
		depositPaid         bool
		inspectionCompleted bool
		wantEnabled         bool
		wantCurrent         bool
	}{
		{"deposit unpaid, not inspected", false, false, false, false},
		{"deposit paid, not inspected", true, false, true, true},
		{"deposit paid, inspected", true, true, true, false},
		{"deposit unpaid, inspected", false, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := BuildSteps(orderWith(tt.depositPaid, false), tt.inspectionCompleted, false, i18n.LocaleEN)
			require.Len(t, steps, 3)

			inspection := steps[1]
			assert.Equal(t, tt.wantEnabled, inspection.Enabled)
			assert.Equal(t, tt.wantCurrent, inspection.Current())
			assert.Equal(t, tt.inspectionCompleted, inspection.Completed)
		})
	}
}

func TestBuildSteps_ContractGate(t *testing.T) {
	tests := []struct {
		name                string
		depositPaid         bool
		inspectionCompleted bool
		contractSigned      bool
		wantEnabled         bool
	}{
		{"neither precondition", false, false, false, false},
		{"deposit only", true, false, false, false},
		{"inspection only", false, true, false, false},
		{"both preconditions", true, true, false, true},
		{"already signed", false, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := BuildSteps(orderWith(tt.depositPaid, false), tt.inspectionCompleted, tt.contractSigned, i18n.LocaleEN)
			require.Len(t, steps, 3)

			contract := steps[2]
			assert.Equal(t, tt.wantEnabled, contract.Enabled)
			assert.Equal(t, tt.wantEnabled || tt.contractSigned, contract.Clickable())
		})
	}
}

func TestBuildSteps_DepositStaysClickableWhenActive(t *testing.T) {
	steps := BuildSteps(orderWith(true, true), true, true, i18n.LocaleEN)
	require.Len(t, steps, 4)

	deposit := steps[0]
	assert.True(t, deposit.Completed)
	assert.True(t, deposit.Enabled)
	assert.True(t, deposit.Clickable())
	assert.False(t, deposit.Current())
}

func TestBuildSteps_ReturnStepOnlyWhenActive(t *testing.T) {
	inactive := BuildSteps(orderWith(true, false), true, true, i18n.LocaleEN)
	require.Len(t, inactive, 3)

	order := orderWith(true, true)
	order.RentalPeriod.End = "2025-10-28 10:00"
	active := BuildSteps(order, true, true, i18n.LocaleEN)
	require.Len(t, active, 4)

	ret := active[3]
	assert.True(t, ret.Enabled)
	assert.False(t, ret.Completed)
	assert.True(t, ret.Current())
	assert.Equal(t, domain.ViewReturn, ret.Target)
	assert.Equal(t, "Due 2025-10-28 10:00", ret.Note)
}

func TestBuildSteps_Order(t *testing.T) {
	steps := BuildSteps(orderWith(false, false), false, false, i18n.LocaleEN)
	require.Len(t, steps, 3)

	assert.Equal(t, domain.ViewDeposit, steps[0].Target)
	assert.Equal(t, domain.ViewInspection, steps[1].Target)
	assert.Equal(t, domain.ViewContract, steps[2].Target)

	// only the first step is actionable at the start
	assert.True(t, steps[0].Current())
	assert.False(t, steps[1].Clickable())
	assert.False(t, steps[2].Clickable())
}

func TestBuildSteps_Localized(t *testing.T) {
	en := BuildSteps(orderWith(false, false), false, false, i18n.LocaleEN)
	ja := BuildSteps(orderWith(false, false), false, false, i18n.LocaleJA)

	assert.NotEqual(t, en[0].Name, ja[0].Name)
}
