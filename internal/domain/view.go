package domain

// View identifies one full-screen state in the pickup/return flow.
type View string

const (
	ViewAuth               View = "AUTH"
	ViewOverview           View = "OVERVIEW"
	ViewInspection         View = "INSPECTION"
	ViewContract           View = "CONTRACT"
	ViewReservationDetails View = "RESERVATION_DETAILS"
	ViewCompletion         View = "COMPLETION"
	ViewDeposit            View = "DEPOSIT"
	ViewVehicleStatus      View = "VEHICLE_STATUS"
	ViewReturn             View = "RETURN"
	ViewTripEnded          View = "TRIP_ENDED"
)
