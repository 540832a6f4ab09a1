// internal/transport/builder.go
package transport

import (
	"fmt"
	"time"

	cfg "github.com/tamzrod/scpi-powermeter/internal/config"
	"github.com/tamzrod/scpi-powermeter/internal/transport/gpib"
	"github.com/tamzrod/scpi-powermeter/internal/transport/hislip"
	"github.com/tamzrod/scpi-powermeter/internal/transport/serialport"
)

// Build constructs the transport selected by config.
// ONE connection attempt, fail fast at startup. The returned closer
// releases the link; the caller owns the lifecycle.
func Build(m cfg.MeterConfig) (Transport, func() error, error) {
	var (
		tr  Transport
		err error
	)

	switch m.Transport {
	case "serial":
		tr, err = serialport.New(serialport.Config{
			Port:     m.Serial.Port,
			BaudRate: m.Serial.BaudRate,
			DataBits: m.Serial.DataBits,
			StopBits: m.Serial.StopBits,
			Parity:   m.Serial.Parity,
			Timeout:  time.Duration(m.Serial.TimeoutMs) * time.Millisecond,
		})

	case "gpib":
		tr, err = gpib.New(gpib.Config{
			Port:    m.GPIB.Port,
			Address: m.GPIB.Address,
		})

	case "hislip":
		tr, err = hislip.New(hislip.Config{
			Endpoint:   m.HiSLIP.Endpoint,
			SubAddress: m.HiSLIP.SubAddress,
			Timeout:    time.Duration(m.HiSLIP.TimeoutMs) * time.Millisecond,
		})

	default:
		return nil, nil, fmt.Errorf("transport: unknown kind %q", m.Transport)
	}

	if err != nil {
		return nil, nil, &CommError{Op: "open", Err: err}
	}

	return tr, tr.Close, nil
}
