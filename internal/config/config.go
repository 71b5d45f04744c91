package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	App     AppConfig     `yaml:"app"`
	Log     LogConfig     `yaml:"log"`
	Auth    AuthConfig    `yaml:"auth"`
	Payment PaymentConfig `yaml:"payment"`
	Vehicle VehicleConfig `yaml:"vehicle"`
	Photos  PhotoConfig   `yaml:"photos"`
}

// AppConfig contains presentation settings
type AppConfig struct {
	Language string `yaml:"language"` // "en", "zh-TW", "ja", "ko", "th"
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// AuthConfig contains the check-in credential stub and session settings
type AuthConfig struct {
	ConfirmationCode string `yaml:"confirmation_code"`
	PhoneDigits      string `yaml:"phone_digits"`
	SessionSecret    string `yaml:"session_secret"`
	SessionExpiry    int    `yaml:"session_expiry_minutes"`
	CheckDelayMillis int    `yaml:"check_delay_ms"`
}

// PaymentConfig contains deposit capture settings
type PaymentConfig struct {
	CaptureDelayMillis int `yaml:"capture_delay_ms"`
}

// VehicleConfig contains the vehicle telemetry stub settings
type VehicleConfig struct {
	CommandDelayMillis  int `yaml:"command_delay_ms"`
	LocationDelayMillis int `yaml:"location_check_delay_ms"`
	ReturnFuelLevel     int `yaml:"return_fuel_level"` // percent read at trip end
	ReturnDistance      int `yaml:"return_distance"`   // km added to the odometer at trip end
}

// PhotoConfig contains photo capture settings
type PhotoConfig struct {
	UploadDir     string `yaml:"upload_dir"`
	InspectionCap int    `yaml:"inspection_cap"` // photos per angle during inspection
	ReturnCap     int    `yaml:"return_cap"`     // photos per angle during return
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("APP_LANGUAGE"); val != "" {
		c.App.Language = val
	}

	if val := os.Getenv("AUTH_CONFIRMATION_CODE"); val != "" {
		c.Auth.ConfirmationCode = val
	}
	if val := os.Getenv("AUTH_PHONE_DIGITS"); val != "" {
		c.Auth.PhoneDigits = val
	}
	if val := os.Getenv("SESSION_SECRET"); val != "" {
		c.Auth.SessionSecret = val
	}

	if val := os.Getenv("UPLOAD_DIR"); val != "" {
		c.Photos.UploadDir = val
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks if the configuration is valid and fills defaults
func (c *Config) Validate() error {
	if c.App.Language == "" {
		c.App.Language = "en"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Auth.ConfirmationCode == "" {
		return fmt.Errorf("auth confirmation code is required")
	}
	if len(c.Auth.PhoneDigits) != 4 {
		return fmt.Errorf("auth phone digits must be exactly 4 characters, got %d", len(c.Auth.PhoneDigits))
	}
	if c.Auth.SessionSecret == "" {
		return fmt.Errorf("session secret is required")
	}
	if len(c.Auth.SessionSecret) < 32 {
		return fmt.Errorf("session secret must be at least 32 characters")
	}
	if c.Auth.SessionExpiry <= 0 {
		c.Auth.SessionExpiry = 60
	}
	if c.Auth.CheckDelayMillis < 0 {
		return fmt.Errorf("invalid auth check delay: %d", c.Auth.CheckDelayMillis)
	}

	if c.Payment.CaptureDelayMillis < 0 {
		return fmt.Errorf("invalid payment capture delay: %d", c.Payment.CaptureDelayMillis)
	}

	if c.Vehicle.CommandDelayMillis < 0 {
		return fmt.Errorf("invalid vehicle command delay: %d", c.Vehicle.CommandDelayMillis)
	}
	if c.Vehicle.LocationDelayMillis < 0 {
		return fmt.Errorf("invalid location check delay: %d", c.Vehicle.LocationDelayMillis)
	}
	if c.Vehicle.ReturnFuelLevel < 0 || c.Vehicle.ReturnFuelLevel > 100 {
		return fmt.Errorf("invalid return fuel level: %d", c.Vehicle.ReturnFuelLevel)
	}
	if c.Vehicle.ReturnFuelLevel == 0 {
		c.Vehicle.ReturnFuelLevel = 68
	}
	if c.Vehicle.ReturnDistance <= 0 {
		c.Vehicle.ReturnDistance = 150
	}

	if c.Photos.UploadDir == "" {
		return fmt.Errorf("photo upload directory is required")
	}
	if c.Photos.InspectionCap <= 0 {
		c.Photos.InspectionCap = 3
	}
	if c.Photos.ReturnCap <= 0 {
		c.Photos.ReturnCap = 1
	}

	return nil
}
