package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

const validConfig = `
auth:
  confirmation_code: "WMQ677027"
  phone_digits: "1005"
  session_secret: "0123456789abcdef0123456789abcdef"
photos:
  upload_dir: "./uploads"
`

func TestLoad_DefaultsApplied(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.App.Language)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 60, cfg.Auth.SessionExpiry)
	assert.Equal(t, 68, cfg.Vehicle.ReturnFuelLevel)
	assert.Equal(t, 150, cfg.Vehicle.ReturnDistance)
	assert.Equal(t, 3, cfg.Photos.InspectionCap)
	assert.Equal(t, 1, cfg.Photos.ReturnCap)
}

func TestLoad_MissingConfirmationCode(t *testing.T) {
	_, err := Load(writeConfig(t, `
auth:
  phone_digits: "1005"
  session_secret: "0123456789abcdef0123456789abcdef"
photos:
  upload_dir: "./uploads"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confirmation code")
}

func TestLoad_ShortSessionSecret(t *testing.T) {
	_, err := Load(writeConfig(t, `
auth:
  confirmation_code: "WMQ677027"
  phone_digits: "1005"
  session_secret: "too-short"
photos:
  upload_dir: "./uploads"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestLoad_BadPhoneDigits(t *testing.T) {
	_, err := Load(writeConfig(t, `
auth:
  confirmation_code: "WMQ677027"
  phone_digits: "10"
  session_secret: "0123456789abcdef0123456789abcdef"
photos:
  upload_dir: "./uploads"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone digits")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_LANGUAGE", "ja")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)
	assert.Equal(t, "ja", cfg.App.Language)
	assert.Equal(t, "debug", cfg.Log.Level)
}
