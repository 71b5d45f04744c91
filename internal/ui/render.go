// Package ui renders each screen of the flow as plain text. Render
// functions are pure: they take a snapshot of the controller state and
// return a string, so every screen can be asserted on in tests.
package ui

import (
	"fmt"
	"strings"

	"carrental-pickup-flow/internal/domain"
	"carrental-pickup-flow/internal/flow"
	"carrental-pickup-flow/internal/i18n"
)

// Model is the read-only snapshot the renderers work from.
type Model struct {
	View                domain.View
	Order               *domain.OrderDetails
	Steps               []flow.Step
	Receipt             *domain.DepositReceipt
	InspectionCompleted bool
	ContractSigned      bool
	TripEnded           bool
	Locale              i18n.Locale

	// Err is an inline validation message shown under the active form.
	Err string
}

// Snapshot builds a Model from the controller's current state.
func Snapshot(c *flow.Controller, errMsg string) Model {
	return Model{
		View:                c.View(),
		Order:               c.Order(),
		Steps:               c.Steps(),
		Receipt:             c.Receipt(),
		InspectionCompleted: c.InspectionCompleted(),
		ContractSigned:      c.ContractSigned(),
		TripEnded:           c.TripEnded(),
		Locale:              c.Locale(),
		Err:                 errMsg,
	}
}

// Render dispatches on the current view. Every view must have a case;
// an unknown view is a programming error and panics so a newly added
// view cannot silently render nothing. Every view past AUTH reads the
// order aggregate, so until check-in loads one the auth screen renders
// regardless of the requested view.
func Render(m Model) string {
	if m.Order == nil && m.View != domain.ViewAuth {
		return RenderAuth(m)
	}

	switch m.View {
	case domain.ViewAuth:
		return RenderAuth(m)
	case domain.ViewOverview:
		return RenderOverview(m)
	case domain.ViewDeposit:
		return RenderDeposit(m)
	case domain.ViewInspection:
		return RenderInspection(m)
	case domain.ViewContract:
		return RenderContract(m)
	case domain.ViewCompletion:
		return RenderCompletion(m)
	case domain.ViewReservationDetails:
		return RenderReservationDetails(m)
	case domain.ViewVehicleStatus:
		return RenderVehicleStatus(m)
	case domain.ViewReturn:
		return RenderReturn(m)
	case domain.ViewTripEnded:
		return RenderTripEnded(m)
	default:
		panic(fmt.Sprintf("ui: no renderer for view %q", m.View))
	}
}

func (m Model) t(key string) string {
	return i18n.T(m.Locale, key)
}

type screen struct {
	b strings.Builder
}

func (s *screen) title(text string) {
	s.b.WriteString("== " + text + " ==\n")
}

func (s *screen) section(text string) {
	s.b.WriteString("\n-- " + text + " --\n")
}

func (s *screen) line(format string, args ...any) {
	fmt.Fprintf(&s.b, format+"\n", args...)
}

func (s *screen) row(label, value string) {
	fmt.Fprintf(&s.b, "  %-22s %s\n", label, value)
}

func (s *screen) inlineError(msg string) {
	if msg != "" {
		s.b.WriteString("\n  ! " + msg + "\n")
	}
}

func (s *screen) String() string {
	return s.b.String()
}
