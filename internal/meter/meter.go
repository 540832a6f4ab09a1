// internal/meter/meter.go
package meter

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
)

// commandSession is the exact contract the meter uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type commandSession interface {
	Send(cmd string) error
	Query(cmd string) (string, error)
	CheckErrors() error
}

// Meter drives one E4418-family power meter over a session.
// All operations are synchronous and block for the full round trip.
type Meter struct {
	sess   commandSession
	log    *logrus.Logger
	runner *timedRunner
}

func New(sess commandSession, log *logrus.Logger) *Meter {
	if log == nil {
		log = logrus.New()
	}
	return &Meter{
		sess:   sess,
		log:    log,
		runner: newTimedRunner(sess),
	}
}

// ---- IEEE-488.2 COMMON COMMANDS ----

// Identify queries the *IDN? identity string.
func (m *Meter) Identify() (string, error) {
	return m.sess.Query("*IDN?")
}

// Options queries the *OPT? installed-options string.
func (m *Meter) Options() (string, error) {
	return m.sess.Query("*OPT?")
}

// Reset performs a soft reset, then confirms it took.
func (m *Meter) Reset() error {
	if err := m.sess.Send("*RST"); err != nil {
		return err
	}
	return m.sess.CheckErrors()
}

// ClearStatus clears the status registers and empties the error queue.
func (m *Meter) ClearStatus() error {
	return m.sess.Send("*CLS")
}

// SelfTest runs the instrument self-test. Zero means all tests passed;
// a non-zero result is reported through the error queue as well.
func (m *Meter) SelfTest() (int, error) {
	line, err := m.sess.Query("*TST?")
	if err != nil {
		return 0, err
	}
	result, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("meter: unexpected *TST? response %q", line)
	}
	if result != 0 {
		if err := m.sess.CheckErrors(); err != nil {
			return result, err
		}
	}
	return result, nil
}

// SetOperationComplete arms the operation-complete bit in the event
// status register once pending operations finish (*OPC).
func (m *Meter) SetOperationComplete() error {
	return m.sess.Send("*OPC")
}

// OperationComplete blocks until pending operations finish (*OPC?).
func (m *Meter) OperationComplete() error {
	line, err := m.sess.Query("*OPC?")
	if err != nil {
		return err
	}
	if line != "1" {
		return fmt.Errorf("meter: unexpected *OPC? response %q", line)
	}
	return nil
}

// StatusByte queries the *STB? status byte.
func (m *Meter) StatusByte() (int, error) {
	return m.queryInt("*STB?")
}

// EventStatus queries and clears the *ESR? event status register.
func (m *Meter) EventStatus() (int, error) {
	return m.queryInt("*ESR?")
}

// SetEventStatusEnable writes the *ESE mask.
func (m *Meter) SetEventStatusEnable(mask int) error {
	if err := m.sess.Send(fmt.Sprintf("*ESE %d", mask)); err != nil {
		return err
	}
	return m.sess.CheckErrors()
}

// SetServiceRequestEnable writes the *SRE mask.
func (m *Meter) SetServiceRequestEnable(mask int) error {
	if err := m.sess.Send(fmt.Sprintf("*SRE %d", mask)); err != nil {
		return err
	}
	return m.sess.CheckErrors()
}

// Save stores the current state in a setup register.
func (m *Meter) Save(register int) error {
	if err := m.sess.Send(fmt.Sprintf("*SAV %d", register)); err != nil {
		return err
	}
	return m.sess.CheckErrors()
}

// Recall restores a stored setup register.
func (m *Meter) Recall(register int) error {
	if err := m.sess.Send(fmt.Sprintf("*RCL %d", register)); err != nil {
		return err
	}
	return m.sess.CheckErrors()
}

// Wait sends *WAI: no further commands execute until pending
// operations complete.
func (m *Meter) Wait() error {
	return m.sess.Send("*WAI")
}

// ---- MEASUREMENT ----

// Power fetches the current reading on a channel (FETC<ch>?).
// A reading invalidated on the instrument side (stale data, sensor not
// zeroed) comes back as a device error, not as a number.
func (m *Meter) Power(ch int) (float64, error) {
	line, err := m.sess.Query(fmt.Sprintf("FETC%d?", ch))
	if err != nil {
		return 0, err
	}

	v, perr := strconv.ParseFloat(line, 64)
	if perr != nil {
		// The instrument queues the reason when it cannot produce a
		// reading; surface that in preference to the parse failure.
		if err := m.sess.CheckErrors(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("meter: unexpected FETC%d? response %q", ch, line)
	}

	return v, nil
}

// ---- TIMED CALIBRATION ACTIONS ----

// Zero runs the zeroing routine on a channel. The sensor must not be
// connected to a power source. This call blocks for the instrument's
// documented zeroing time (about 10 seconds) plus two error-queue
// round trips; do not call it from a context that cannot tolerate
// that.
//
// The channel is passed through unvalidated: an invalid channel is an
// instrument-side concern and comes back through the error queue.
func (m *Meter) Zero(ch int) error {
	m.log.WithField("channel", ch).Info("zeroing, blocks ~10 s")
	return m.runner.Run(fmt.Sprintf("CAL%d:ZERO:AUTO ONCE", ch), zeroingWait)
}

// Calibrate runs the reference calibration on a channel against the
// 1 mW calibrator output. Blocks like Zero does.
func (m *Meter) Calibrate(ch int) error {
	m.log.WithField("channel", ch).Info("calibrating, blocks ~10 s")
	return m.runner.Run(fmt.Sprintf("CAL%d:AUTO ONCE", ch), calibrationWait)
}

func (m *Meter) queryInt(cmd string) (int, error) {
	line, err := m.sess.Query(cmd)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("meter: unexpected %s response %q", cmd, line)
	}
	return v, nil
}
