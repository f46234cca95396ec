// Package config загружает настройки приложения из YAML-файла.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"usmelt/internal/infrastructure/logger"
	"usmelt/pkg/tg5012a"
)

// DefaultDevice - логическое имя генератора в реестре.
const DefaultDevice = "TG5012A"

type Config struct {
	Registry   RegistryConfig   `yaml:"registry"`
	Instrument InstrumentConfig `yaml:"instrument"`
	Log        logger.Config    `yaml:"log"`
}

// RegistryConfig - где хранится реестр устройств и какие устройства искать.
type RegistryConfig struct {
	Path    string   `yaml:"path"`
	Load    bool     `yaml:"load"`
	Save    bool     `yaml:"save"`
	Devices []string `yaml:"devices"`
}

// InstrumentConfig - параметры подключения к генератору. Если Address
// задан, используется TCP и обнаружение порта не выполняется.
type InstrumentConfig struct {
	Device      string        `yaml:"device"`
	SerialPort  string        `yaml:"serial_port"`
	Address     string        `yaml:"address"`
	TCPPort     int           `yaml:"tcp_port"`
	BaudRate    int           `yaml:"baud_rate"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
	AutoLocal   bool          `yaml:"auto_local"`
	ErrorCheck  bool          `yaml:"error_check"`
}

// Default возвращает настройки по умолчанию.
func Default() Config {
	drv := tg5012a.DefaultConfig()
	return Config{
		Registry: RegistryConfig{
			Path:    "usmelt.ini",
			Load:    true,
			Save:    true,
			Devices: []string{DefaultDevice},
		},
		Instrument: InstrumentConfig{
			Device:     DefaultDevice,
			TCPPort:    drv.TCPPort,
			BaudRate:   drv.BaudRate,
			AutoLocal:  drv.AutoLocal,
			ErrorCheck: drv.ErrorCheck,
		},
		Log: logger.Config{Level: "info"},
	}
}

// Load читает файл path поверх настроек по умолчанию.
// Отсутствующий файл - настройки по умолчанию.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек и добавляет имя генератора
// в список устройств реестра.
func (c *Config) Validate() error {
	if c.Instrument.Device == "" {
		return errors.New("config: instrument.device is empty")
	}
	if c.Instrument.TCPPort <= 0 || c.Instrument.TCPPort > 65535 {
		return fmt.Errorf("config: instrument.tcp_port %d out of range", c.Instrument.TCPPort)
	}
	if c.Instrument.BaudRate <= 0 {
		return fmt.Errorf("config: instrument.baud_rate %d must be positive", c.Instrument.BaudRate)
	}
	if c.Instrument.ReadTimeout < 0 {
		return fmt.Errorf("config: instrument.read_timeout %s is negative", c.Instrument.ReadTimeout)
	}
	if !slices.Contains(c.Registry.Devices, c.Instrument.Device) {
		c.Registry.Devices = append(c.Registry.Devices, c.Instrument.Device)
	}
	return nil
}

// Driver строит конфигурацию сессии tg5012a. Порт serialPort берётся из
// реестра, если он не задан явно в настройках.
func (c *Config) Driver(serialPort string) tg5012a.Config {
	drv := tg5012a.DefaultConfig()
	drv.SerialPort = serialPort
	if c.Instrument.SerialPort != "" {
		drv.SerialPort = c.Instrument.SerialPort
	}
	drv.Address = c.Instrument.Address
	drv.TCPPort = c.Instrument.TCPPort
	drv.BaudRate = c.Instrument.BaudRate
	drv.ReadTimeout = c.Instrument.ReadTimeout
	drv.AutoLocal = c.Instrument.AutoLocal
	drv.ErrorCheck = c.Instrument.ErrorCheck
	return drv
}
