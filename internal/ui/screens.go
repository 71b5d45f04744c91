package ui

import "fmt"

func RenderAuth(m Model) string {
	var s screen
	s.title(m.t("appTitle"))
	s.line("%s", m.t("appSubtitle"))
	s.section(m.t("authWelcome"))
	s.row(m.t("confirmationCodeLabel"), "________")
	s.row(m.t("phoneDigitsLabel"), "____")
	s.line("\n  [%s]", m.t("continue"))
	s.inlineError(m.Err)
	return s.String()
}

func RenderOverview(m Model) string {
	var s screen
	o := m.Order

	header := m.t("carReadyTitle")
	if o.IsRentalActive {
		header = m.t("carActiveTitle")
	}
	s.title(m.t("pickupTitle"))
	s.line("%s", header)
	s.line("%s: %s", m.t("confirmationNumberLabel"), o.ConfirmationCode)
	s.line("%s  %s · %s", o.Vehicle.Name, o.Vehicle.Color, o.Vehicle.LicensePlate)
	s.line("%s → %s (%s)", o.RentalPeriod.Start, o.RentalPeriod.End, o.RentalPeriod.Duration)

	s.section(m.t("pickupInstructionsTitle"))
	for i, step := range m.Steps {
		marker := " "
		switch {
		case step.Completed:
			marker = "✓"
		case step.Current():
			marker = "→"
		}
		action := step.ActionLabel
		if step.Completed {
			action = m.t("view")
		} else if !step.Clickable() {
			action = "·"
		}
		s.line("  %s %d. %-24s [%s]", marker, i+1, step.Name, action)
		if step.Note != "" {
			s.line("       %s", step.Note)
		}
	}

	s.section(m.t("pickupLocationTitle"))
	s.line("  %s", o.PickupLocation)
	s.line("  %s · %s", o.PickupLocationDetails.Name, o.PickupLocationDetails.Phone)
	s.inlineError(m.Err)
	return s.String()
}

func RenderDeposit(m Model) string {
	var s screen
	o := m.Order
	s.title(m.t("depositTitle"))

	if o.IsDepositPaid && m.Receipt != nil {
		s.line("%s", m.t("depositSuccessTitle"))
		s.row(m.t("depositAmount"), money(m.Receipt.Amount, m.Receipt.Currency))
		s.row(m.t("transactionId"), m.Receipt.TransactionID)
		s.row(m.t("status"), m.t("statusCaptured"))
		return s.String()
	}

	s.row(m.t("totalPrice"), money(o.TotalPrice, o.Deposit.Currency))
	s.row(m.t("preAuthDeposit"), money(o.Deposit.Amount, o.Deposit.Currency))
	s.line("  %s", m.t("stepDepositNote"))
	s.line("\n  [%s]", m.t("stepDepositAction"))
	s.inlineError(m.Err)
	return s.String()
}

func RenderInspection(m Model) string {
	var s screen
	o := m.Order
	s.title(m.t("inspectionTitle"))

	s.section(m.t("dashboardTitle"))
	s.row(m.t("mileageLabel"), fmt.Sprintf("%d %s", o.Vehicle.Odometer, m.t("km")))
	s.row(m.t("fuelLevelLabel"), fmt.Sprintf("%d%%", o.Vehicle.FuelLevel))

	s.section(m.t("exteriorTitle"))
	s.line("  [+] [+] [+]")
	s.section(m.t("damagePhotos"))
	s.line("  [+] [+] [+]")

	s.line("\n  [%s]", m.t("continueToContract"))
	s.inlineError(m.Err)
	return s.String()
}

func RenderContract(m Model) string {
	var s screen
	o := m.Order
	s.title(m.t("contractTitle"))

	s.section(m.t("bookingInfoTitle"))
	s.row(m.t("orderNumber"), o.OrderNumber)
	s.row(m.t("confirmationNumber"), o.ConfirmationCode)
	s.row(m.t("carModel"), o.Vehicle.Name)
	s.row(m.t("pickupTime"), o.RentalPeriod.Start)
	s.row(m.t("pickupLocation"), o.PickupLocation)
	s.row(m.t("returnTime"), o.RentalPeriod.End)
	s.row(m.t("returnLocation"), o.ReturnLocation)

	s.section(m.t("customerInfoTitle"))
	s.row(m.t("mainDriver"), o.Customer.Name)
	s.row(m.t("contactPhone"), o.Customer.Phone)

	s.section(m.t("rentalContract"))
	s.row(m.t("contractNumber"), o.Contract.Number)
	s.row(m.t("signingDate"), o.Contract.Date)

	if !m.ContractSigned {
		s.line("\n  [%s]", m.t("signAndComplete"))
	}
	s.inlineError(m.Err)
	return s.String()
}

func RenderCompletion(m Model) string {
	var s screen
	o := m.Order
	s.title(m.t("contractSignedTitle"))
	s.row(m.t("contractNumber"), o.Contract.Number)
	s.row(m.t("signingDate"), o.Contract.Date)
	s.line("\n  [%s]", m.t("startRental"))
	return s.String()
}

func RenderReservationDetails(m Model) string {
	var s screen
	o := m.Order
	s.title(m.t("reservationDetailsTitle"))
	s.row(m.t("orderNumber"), o.OrderNumber)
	s.row(m.t("confirmationNumber"), o.ConfirmationCode)
	s.row(m.t("pickupTime"), o.RentalPeriod.Start)
	s.row(m.t("returnTime"), o.RentalPeriod.End)
	s.row(m.t("totalPrice"), money(o.TotalPrice, o.Deposit.Currency))

	s.section(m.t("vehicleDetails"))
	s.row(m.t("carModel"), o.Vehicle.Name)
	s.row(m.t("licensePlate"), o.Vehicle.LicensePlate)
	s.row(m.t("color"), o.Vehicle.Color)

	s.section(m.t("pickupLocationTitle"))
	s.line("  %s", o.PickupLocation)
	s.line("  %s", o.PickupInstructions)
	return s.String()
}

func RenderVehicleStatus(m Model) string {
	var s screen
	o := m.Order
	s.title(o.Vehicle.Name)
	s.row(m.t("licensePlate"), o.Vehicle.LicensePlate)
	s.row(m.t("parkingSpot"), o.Vehicle.ParkingSpot)
	s.row(m.t("fuelLevelLabel"), fmt.Sprintf("%d%%", o.Vehicle.FuelLevel))
	s.row(m.t("mileageLabel"), fmt.Sprintf("%d %s", o.Vehicle.Odometer, m.t("km")))

	s.section(m.t("controls"))
	lockLabel := m.t("actionLock")
	if o.Vehicle.IsLocked {
		lockLabel = m.t("actionUnlock")
	}
	s.line("  [%s] [%s] [%s]", m.t("actionFlash"), m.t("actionHonk"), lockLabel)
	s.inlineError(m.Err)
	return s.String()
}

func RenderReturn(m Model) string {
	var s screen
	o := m.Order
	s.title(m.t("returnTitle"))
	s.line("%s: %s", m.t("returnLocation"), o.ReturnLocation)
	s.line("  %s", m.t("locationOk"))
	s.section(m.t("exteriorTitle"))
	s.line("  [+]")
	s.line("\n  [%s]", m.t("endTrip"))
	s.inlineError(m.Err)
	return s.String()
}

func RenderTripEnded(m Model) string {
	var s screen
	o := m.Order
	s.title(m.t("tripEndedTitle"))
	s.line("%s", m.t("tripEndedMessage"))
	s.row(m.t("mileageLabel"), fmt.Sprintf("%d %s", o.Vehicle.Odometer, m.t("km")))
	s.row(m.t("fuelLevelLabel"), fmt.Sprintf("%d%%", o.Vehicle.FuelLevel))
	s.line("\n  %s", m.t("digitalKeyDisabled"))
	s.line("  [%s]", m.t("backToHome"))
	return s.String()
}

func money(amount float64, currency string) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}
