package service

import (
	"context"
	"time"

	"carrental-pickup-flow/internal/domain"
	"carrental-pickup-flow/internal/logger"
)

// stubVehicleService simulates the vehicle computer. Commands always
// succeed after a fixed delay; the end-of-trip stat sync reports the
// configured fuel level and adds the configured distance to the odometer.
type stubVehicleService struct {
	commandDelay  time.Duration
	locationDelay time.Duration
	returnFuel    int
	returnDist    int
}

func NewStubVehicleService(commandDelay, locationDelay time.Duration, returnFuelLevel, returnDistance int) VehicleService {
	return &stubVehicleService{
		commandDelay:  commandDelay,
		locationDelay: locationDelay,
		returnFuel:    returnFuelLevel,
		returnDist:    returnDistance,
	}
}

func (s *stubVehicleService) SendCommand(ctx context.Context, cmd domain.VehicleCommand) error {
	logger.CollaboratorCall("vehicle", "SendCommand", "command", string(cmd))
	pause(s.commandDelay)
	logger.CollaboratorResult("vehicle", "SendCommand", nil, "command", string(cmd))
	return nil
}

func (s *stubVehicleService) SyncStats(ctx context.Context, currentOdometer int) (domain.VehicleStats, error) {
	logger.CollaboratorCall("vehicle", "SyncStats")
	pause(s.commandDelay)
	stats := domain.VehicleStats{
		FuelLevel: s.returnFuel,
		Odometer:  currentOdometer + s.returnDist,
	}
	logger.CollaboratorResult("vehicle", "SyncStats", nil, "fuel_level", stats.FuelLevel, "odometer", stats.Odometer)
	return stats, nil
}

func (s *stubVehicleService) CheckReturnLocation(ctx context.Context) (bool, error) {
	logger.CollaboratorCall("vehicle", "CheckReturnLocation")
	pause(s.locationDelay)
	logger.CollaboratorResult("vehicle", "CheckReturnLocation", nil, "valid", true)
	return true, nil
}
