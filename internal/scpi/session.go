// internal/scpi/session.go
package scpi

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/scpi-powermeter/internal/transport"
)

// Reporter receives protocol-level events for instrumentation.
// Implementations must be cheap; they run on the command path.
type Reporter interface {
	ReportCommand(cmd string)
	ReportDeviceError(code int)
	ReportCommFailure()
}

// Session owns exactly one transport for its lifetime and serializes
// every exchange on it. SCPI devices cannot interleave command and
// response streams on one link, so each round trip holds the mutex
// from send through read.
type Session struct {
	mu  sync.Mutex
	tr  transport.Transport
	log *logrus.Logger
	rep Reporter
}

// NewSession wraps a transport. The reporter is optional.
func NewSession(tr transport.Transport, log *logrus.Logger, rep Reporter) *Session {
	if log == nil {
		log = logrus.New()
	}
	return &Session{tr: tr, log: log, rep: rep}
}

// Send transmits one command that produces no response.
func (s *Session) Send(cmd string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.send(cmd)
}

// Query transmits one command and blocks for its one-line response.
func (s *Session) Query(cmd string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.send(cmd); err != nil {
		return "", err
	}

	line, err := s.tr.ReadLine()
	if err != nil {
		if s.rep != nil {
			s.rep.ReportCommFailure()
		}
		return "", asCommError("read", err)
	}

	return strings.TrimSpace(line), nil
}

func (s *Session) send(cmd string) error {
	s.log.WithField("cmd", cmd).Debug("send")
	if s.rep != nil {
		s.rep.ReportCommand(cmd)
	}

	if err := s.tr.Send(cmd); err != nil {
		if s.rep != nil {
			s.rep.ReportCommFailure()
		}
		return asCommError("send", err)
	}
	return nil
}

// QueryError drains one entry from the instrument's error queue.
//
// The queue is FIFO with capacity 30; one entry is removed per call
// and an empty queue answers 0,"No error". The response frame is
// <int>,"<message>"; anything else is a *ParseError.
func (s *Session) QueryError() (int, string, error) {
	line, err := s.Query("SYST:ERR?")
	if err != nil {
		return 0, "", err
	}

	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return 0, "", &ParseError{Line: line, Reason: "want two comma-separated fields"}
	}

	code, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, "", &ParseError{Line: line, Reason: "error code is not an integer"}
	}

	msg := strings.TrimSpace(fields[1])
	msg = strings.TrimSpace(strings.Trim(msg, `"`))

	return code, msg, nil
}

// CheckErrors is the post-command sentinel: most SCPI set commands
// return nothing, so the only way to confirm them is to ask the error
// queue. Fails with a *DeviceError for any non-zero code.
func (s *Session) CheckErrors() error {
	code, msg, err := s.QueryError()
	if err != nil {
		return err
	}

	if err := Decode(code, msg); err != nil {
		s.log.WithFields(logrus.Fields{
			"code":    code,
			"message": msg,
		}).Warn("instrument reported error")
		if s.rep != nil {
			s.rep.ReportDeviceError(code)
		}
		return err
	}
	return nil
}

// Close releases the underlying transport.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tr.Close()
}

// asCommError classifies a transport failure, preserving an already
// classified one.
func asCommError(op string, err error) error {
	var ce *transport.CommError
	if errors.As(err, &ce) {
		return err
	}
	return &transport.CommError{Op: op, Err: err}
}
