package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "usmelt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 9221, cfg.Instrument.TCPPort)
	assert.Equal(t, []string{DefaultDevice}, cfg.Registry.Devices)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
registry:
  path: /var/lib/usmelt/devices.ini
  save: false
  devices: [PSU]
instrument:
  device: PG
  read_timeout: 2s
  error_check: false
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/usmelt/devices.ini", cfg.Registry.Path)
	assert.True(t, cfg.Registry.Load)
	assert.False(t, cfg.Registry.Save)
	assert.Equal(t, []string{"PSU", "PG"}, cfg.Registry.Devices)
	assert.Equal(t, 2*time.Second, cfg.Instrument.ReadTimeout)
	assert.True(t, cfg.Instrument.AutoLocal)
	assert.False(t, cfg.Instrument.ErrorCheck)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "instrument: [\n"},
		{"empty device", "instrument:\n  device: \"\"\n"},
		{"tcp port", "instrument:\n  tcp_port: 70000\n"},
		{"baud rate", "instrument:\n  baud_rate: 0\n"},
		{"read timeout", "instrument:\n  read_timeout: -1s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDriverConfig(t *testing.T) {
	cfg := Default()
	cfg.Instrument.ReadTimeout = time.Second

	drv := cfg.Driver("/dev/ttyACM0")
	assert.Equal(t, "/dev/ttyACM0", drv.SerialPort)
	assert.Equal(t, 9600, drv.BaudRate)
	assert.Equal(t, time.Second, drv.ReadTimeout)
	assert.True(t, drv.ErrorCheck)

	cfg.Instrument.SerialPort = "COM7"
	assert.Equal(t, "COM7", cfg.Driver("/dev/ttyACM0").SerialPort)
}
