// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	m := &cfg.Meter

	if m.Channel == 0 {
		m.Channel = 1
	}

	if m.Serial.BaudRate == 0 {
		m.Serial.BaudRate = 9600
	}
	if m.Serial.DataBits == 0 {
		m.Serial.DataBits = 8
	}
	if m.Serial.StopBits == 0 {
		m.Serial.StopBits = 1
	}
	if m.Serial.Parity == "" {
		m.Serial.Parity = "N"
	}
	if m.Serial.TimeoutMs == 0 {
		m.Serial.TimeoutMs = 3000
	}

	if m.HiSLIP.SubAddress == "" {
		m.HiSLIP.SubAddress = "hislip0"
	}
	if m.HiSLIP.TimeoutMs == 0 {
		m.HiSLIP.TimeoutMs = 10000
	}

	if m.Log.Level == "" {
		m.Log.Level = "info"
	}
	if m.Log.Format == "" {
		m.Log.Format = "text"
	}
}
