package domain

// VehicleCommand is a remote control intent sent to the vehicle.
type VehicleCommand string

const (
	CommandFlash  VehicleCommand = "FLASH"
	CommandHonk   VehicleCommand = "HONK"
	CommandLock   VehicleCommand = "LOCK"
	CommandUnlock VehicleCommand = "UNLOCK"
)

// VehicleStats is a snapshot read from the vehicle computer.
type VehicleStats struct {
	FuelLevel int `json:"fuel_level"` // percent
	Odometer  int `json:"odometer"`   // km
}
