package domain

type RentalPeriod struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Vehicle struct {
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	LicensePlate string  `json:"license_plate"`
	State        string  `json:"state"`
	Color        string  `json:"color"`
	FuelLevel    int     `json:"fuel_level"` // percent
	Range        int     `json:"range"`      // km
	Odometer     int     `json:"odometer"`   // km
	ParkingSpot  string  `json:"parking_spot,omitempty"`
	IsLocked     bool    `json:"is_locked"`
	Coordinates  *LatLng `json:"coordinates,omitempty"`
}

type Location struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Contract struct {
	Number string `json:"number"`
	Date   string `json:"date"`
}

type Deposit struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// OrderDetails is the rental order aggregate passed to every screen.
// Identifiers, period, price and location fields are fixed at creation;
// the vehicle lock state and the Is* flags are the only runtime-mutable
// parts, and only the flow controller mutates them.
type OrderDetails struct {
	OrderNumber           string       `json:"order_number"`
	ConfirmationCode      string       `json:"confirmation_code"`
	RentalPeriod          RentalPeriod `json:"rental_period"`
	TotalPrice            float64      `json:"total_price"`
	Vehicle               Vehicle      `json:"vehicle"`
	PickupLocation        string       `json:"pickup_location"`
	PickupLocationDetails Location     `json:"pickup_location_details"`
	PickupInstructions    string       `json:"pickup_instructions"`
	ReturnLocation        string       `json:"return_location"`
	Customer              Customer     `json:"customer"`
	Contract              Contract     `json:"contract"`
	Deposit               Deposit      `json:"deposit"`
	PickupStatus          string       `json:"pickup_status"`
	PreparationStatus     string       `json:"preparation_status"`
	IsIdentityVerified    bool         `json:"is_identity_verified"`
	IsDepositPaid         bool         `json:"is_deposit_paid"`
	IsRentalActive        bool         `json:"is_rental_active"`
}

// DepositReceipt records a captured deposit pre-authorization.
type DepositReceipt struct {
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
}
