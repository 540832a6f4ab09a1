// internal/transport/transport.go
package transport

import "fmt"

// Transport is one byte link to one instrument.
// Send transmits a single command without its line terminator.
// ReadLine blocks for one response line and returns it without the
// terminator. Implementations return plain errors on link failure;
// the session classifies them as *CommError at its boundary.
type Transport interface {
	Send(cmd string) error
	ReadLine() (string, error)
	Close() error
}

// CommError is a link-level failure: connection down, read timeout,
// controller fault. It is never an instrument-reported error.
type CommError struct {
	Op  string // "send", "read", "open", "close"
	Err error
}

func (e *CommError) Error() string {
	return fmt.Sprintf("transport: %s failed: %v", e.Op, e.Err)
}

func (e *CommError) Unwrap() error { return e.Err }
