// internal/config/validate_test.go
package config

import "testing"

// helper to build a minimal serial config quickly
func serialCfg(port string) *Config {
	return &Config{
		Meter: MeterConfig{
			Transport: "serial",
			Serial: SerialConfig{
				Port: port,
			},
		},
	}
}

// ---- tests ----

func TestValidate_SerialOK(t *testing.T) {
	if err := Validate(serialCfg("/dev/ttyS0")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_TransportRequired(t *testing.T) {
	cfg := &Config{}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestValidate_UnknownTransport(t *testing.T) {
	cfg := &Config{Meter: MeterConfig{Transport: "carrier-pigeon"}}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestValidate_SerialPortRequired(t *testing.T) {
	if err := Validate(serialCfg("")); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestValidate_SerialBadParity(t *testing.T) {
	cfg := serialCfg("/dev/ttyS0")
	cfg.Meter.Serial.Parity = "X"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestValidate_GPIBAddressRange(t *testing.T) {
	cfg := &Config{
		Meter: MeterConfig{
			Transport: "gpib",
			GPIB:      GPIBConfig{Port: "/dev/ttyUSB0", Address: 31},
		},
	}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error, got nil")
	}

	cfg.Meter.GPIB.Address = 13
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_HiSLIPEndpointRequired(t *testing.T) {
	cfg := &Config{Meter: MeterConfig{Transport: "hislip"}}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestValidate_MetricsPortCheckedOnlyWhenEnabled(t *testing.T) {
	cfg := serialCfg("/dev/ttyS0")
	cfg.Meter.Metrics = MetricsConfig{Enabled: false, Port: 0}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Meter.Metrics.Enabled = true
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := serialCfg("/dev/ttyS0")
	Normalize(cfg)

	m := cfg.Meter
	if m.Channel != 1 {
		t.Fatalf("channel=%d, want 1", m.Channel)
	}
	if m.Serial.BaudRate != 9600 || m.Serial.DataBits != 8 || m.Serial.StopBits != 1 {
		t.Fatalf("serial defaults not applied: %+v", m.Serial)
	}
	if m.Serial.Parity != "N" {
		t.Fatalf("parity=%q, want N", m.Serial.Parity)
	}
	if m.HiSLIP.SubAddress != "hislip0" {
		t.Fatalf("sub_address=%q", m.HiSLIP.SubAddress)
	}
	if m.Log.Level != "info" || m.Log.Format != "text" {
		t.Fatalf("log defaults not applied: %+v", m.Log)
	}
}

func TestNormalize_PreservesExplicitValues(t *testing.T) {
	cfg := serialCfg("/dev/ttyS0")
	cfg.Meter.Channel = 2
	cfg.Meter.Serial.BaudRate = 115200

	Normalize(cfg)

	if cfg.Meter.Channel != 2 {
		t.Fatalf("channel=%d, want 2", cfg.Meter.Channel)
	}
	if cfg.Meter.Serial.BaudRate != 115200 {
		t.Fatalf("baud=%d, want 115200", cfg.Meter.Serial.BaudRate)
	}
}
