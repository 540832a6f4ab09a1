// internal/scpi/errors.go
package scpi

import "fmt"

// Report is one decoded entry from the instrument's error queue.
// Code is the code the device reported for this occurrence; Summary
// and Detail come from the catalog, or Summary carries the raw device
// message when the text is not cataloged.
type Report struct {
	Code    int
	Summary string
	Detail  string
}

// DeviceError is an instrument-reported failure drained via SYST:ERR?.
// It is always surfaced; nothing in this layer suppresses a non-zero
// code.
type DeviceError struct {
	Report Report
}

func (e *DeviceError) Error() string {
	if e.Report.Detail == "" {
		return fmt.Sprintf("power meter error %d: %s", e.Report.Code, e.Report.Summary)
	}
	return fmt.Sprintf("power meter error %d: %s: %s", e.Report.Code, e.Report.Summary, e.Report.Detail)
}

// ParseError means the SYST:ERR? response did not match the
// <int>,"<message>" frame. Distinct from DeviceError: it indicates a
// framing or firmware mismatch, not an instrument-reported fault.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("scpi: malformed error-queue response %q: %s", e.Line, e.Reason)
}
