// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Meter MeterConfig `yaml:"meter"`
}

// ---- METER ----

type MeterConfig struct {
	// Channel is the sensor channel for channel-qualified commands.
	// The valid domain is instrument-defined (1 or 2 on the E4418
	// family); it is passed through unvalidated and rejected by the
	// instrument itself.
	Channel int `yaml:"channel"`

	Transport string `yaml:"transport"` // serial | gpib | hislip

	Serial SerialConfig `yaml:"serial"`
	GPIB   GPIBConfig   `yaml:"gpib"`
	HiSLIP HiSLIPConfig `yaml:"hislip"`

	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ---- TRANSPORTS ----

type SerialConfig struct {
	Port      string `yaml:"port"`
	BaudRate  int    `yaml:"baud_rate"`
	DataBits  int    `yaml:"data_bits"`
	StopBits  int    `yaml:"stop_bits"`
	Parity    string `yaml:"parity"` // N | E | O
	TimeoutMs int    `yaml:"timeout_ms"`
}

type GPIBConfig struct {
	Port    string `yaml:"port"`    // Prologix controller serial port
	Address int    `yaml:"address"` // instrument GPIB address
}

type HiSLIPConfig struct {
	Endpoint   string `yaml:"endpoint"`
	SubAddress string `yaml:"sub_address"`
	TimeoutMs  int    `yaml:"timeout_ms"`
}

// ---- AMBIENT ----

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Load reads and parses a yaml config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return &cfg, nil
}
