// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	m := &cfg.Meter

	switch m.Transport {
	case "serial":
		if m.Serial.Port == "" {
			return fmt.Errorf("meter: transport %q requires serial.port", m.Transport)
		}
		switch m.Serial.Parity {
		case "", "N", "E", "O":
		default:
			return fmt.Errorf("meter: serial.parity %q must be one of N, E, O", m.Serial.Parity)
		}
		if m.Serial.TimeoutMs < 0 {
			return fmt.Errorf("meter: serial.timeout_ms must be >= 0")
		}

	case "gpib":
		if m.GPIB.Port == "" {
			return fmt.Errorf("meter: transport %q requires gpib.port", m.Transport)
		}
		// Primary addresses 0-30; 31 is the untalk/unlisten address.
		if m.GPIB.Address < 0 || m.GPIB.Address > 30 {
			return fmt.Errorf("meter: gpib.address %d out of range 0-30", m.GPIB.Address)
		}

	case "hislip":
		if m.HiSLIP.Endpoint == "" {
			return fmt.Errorf("meter: transport %q requires hislip.endpoint", m.Transport)
		}
		if m.HiSLIP.TimeoutMs < 0 {
			return fmt.Errorf("meter: hislip.timeout_ms must be >= 0")
		}

	case "":
		return fmt.Errorf("meter: transport is required")

	default:
		return fmt.Errorf("meter: unknown transport %q", m.Transport)
	}

	switch m.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("meter: log.format %q must be text or json", m.Log.Format)
	}

	if m.Metrics.Enabled && (m.Metrics.Port <= 0 || m.Metrics.Port > 65535) {
		return fmt.Errorf("meter: metrics.port %d out of range", m.Metrics.Port)
	}

	return nil
}
