package flow

import (
	"carrental-pickup-flow/internal/domain"
	"carrental-pickup-flow/internal/i18n"
)

// Step is one row of the overview step list. The overview renders steps
// in order; whether a row reacts to input is derived, not stored.
type Step struct {
	Name        string
	Note        string
	ActionLabel string
	Completed   bool
	Enabled     bool
	Target      domain.View
}

// Clickable reports whether the row accepts input, either to perform the
// step or to review it after completion.
func (s Step) Clickable() bool { return s.Completed || s.Enabled }

// Current reports whether the row is the one the customer should act on.
func (s Step) Current() bool { return s.Enabled && !s.Completed }

// BuildSteps assembles the ordered step list for the overview screen.
// The three pickup steps gate on each other: inspection needs the
// deposit, the contract needs both. Completed steps stay enabled so
// they can be reviewed. The return step only exists while the rental
// is active.
func BuildSteps(order *domain.OrderDetails, inspectionCompleted, contractSigned bool, locale i18n.Locale) []Step {
	if order == nil {
		return nil
	}

	depositPaid := order.IsDepositPaid
	active := order.IsRentalActive

	steps := []Step{
		{
			Name:        i18n.T(locale, "stepDeposit"),
			Note:        i18n.T(locale, "stepDepositNote"),
			ActionLabel: i18n.T(locale, "stepDepositAction"),
			Completed:   depositPaid,
			Enabled:     !depositPaid || active,
			Target:      domain.ViewDeposit,
		},
		{
			Name:        i18n.T(locale, "stepInspection"),
			ActionLabel: i18n.T(locale, "stepInspectionAction"),
			Completed:   inspectionCompleted,
			Enabled:     (depositPaid && !inspectionCompleted) || inspectionCompleted,
			Target:      domain.ViewInspection,
		},
		{
			Name:        i18n.T(locale, "stepContract"),
			ActionLabel: i18n.T(locale, "stepContractAction"),
			Completed:   contractSigned,
			Enabled:     (depositPaid && inspectionCompleted) || contractSigned,
			Target:      domain.ViewContract,
		},
	}

	if active {
		steps = append(steps, Step{
			Name:        i18n.T(locale, "stepReturn"),
			Note:        i18n.T(locale, "stepReturnNote") + order.RentalPeriod.End,
			ActionLabel: i18n.T(locale, "stepReturnAction"),
			Enabled:     true,
			Target:      domain.ViewReturn,
		})
	}

	return steps
}
