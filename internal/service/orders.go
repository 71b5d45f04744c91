package service

import (
	"context"

	"carrental-pickup-flow/internal/domain"
	"carrental-pickup-flow/internal/logger"
)

// canonicalOrder is the canned record the order collaborator serves. It
// mirrors the single reservation this prototype models.
var canonicalOrder = domain.OrderDetails{
	OrderNumber:      "ORD-2025-1026-001",
	ConfirmationCode: "WMQ677027",
	RentalPeriod: domain.RentalPeriod{
		Start:    "2025-10-28 10:00",
		End:      "2025-10-31 18:00",
		Duration: "3 Days",
	},
	TotalPrice: 365.00,
	Vehicle: domain.Vehicle{
		Name:         "Toyota Camry or similar",
		Image:        "https://i.ibb.co/6nZJ31m/camry.png",
		LicensePlate: "BA23-328",
		State:        "Connecticut",
		Color:        "WHITE",
		FuelLevel:    85,
		Range:        420,
		Odometer:     12450,
		ParkingSpot:  "A-23",
		IsLocked:     true,
		Coordinates:  &domain.LatLng{Lat: 35.6895, Lng: 139.6917},
	},
	PickupLocation: "Beijing Capital International Airport T3, 1st Floor, Arrivals Hall A",
	PickupLocationDetails: domain.Location{
		Name:  "Beijing Airport T3 Store",
		Phone: "+861064532623",
	},
	PickupInstructions: "Go to the 1st floor arrivals hall, turn left at Starbucks, walk 200m to the elevator, go to B1 parking, zone A.",
	ReturnLocation:     "Beijing Capital International Airport T3, 1st Floor, Arrivals Hall A",
	Customer: domain.Customer{
		Name:  "Mr. Smith",
		Phone: "138****8888",
	},
	Contract: domain.Contract{
		Number: "CO-2025-1026-001",
		Date:   "2025-10-26",
	},
	Deposit: domain.Deposit{
		Amount:   1000,
		Currency: "$",
	},
	PickupStatus:       "Awaiting Pickup",
	PreparationStatus:  "Vehicle preparation complete, estimated 08/07 14:30",
	IsIdentityVerified: true,
	IsDepositPaid:      false,
	IsRentalActive:     false,
}

type mockOrderService struct{}

func NewMockOrderService() OrderService {
	return &mockOrderService{}
}

// FetchOrder returns a fresh copy of the canonical record so controller
// mutations never leak back into the template.
func (s *mockOrderService) FetchOrder(ctx context.Context) (*domain.OrderDetails, error) {
	logger.CollaboratorCall("orders", "FetchOrder")
	order := canonicalOrder
	if canonicalOrder.Vehicle.Coordinates != nil {
		coords := *canonicalOrder.Vehicle.Coordinates
		order.Vehicle.Coordinates = &coords
	}
	logger.CollaboratorResult("orders", "FetchOrder", nil, "order_number", order.OrderNumber)
	return &order, nil
}
