// internal/meter/timed.go
package meter

import "time"

// The instrument's documented zeroing time.
const zeroingWait = 10 * time.Second

// Settling time for the reference calibration routine.
const calibrationWait = 10 * time.Second

// runState tracks a timed command through its lifecycle.
type runState int

const (
	stateIdle runState = iota
	stateSent
	stateWaiting
	stateVerified
	stateFailed
)

// timedRunner serializes a command that triggers a long physical
// action on the instrument. The instrument accepts the command
// immediately, works for a fixed documented duration and queues any
// failure, so a run is: send, fast check for parameter errors, fixed
// wait, second check for action errors (e.g. ZERO ERROR).
type timedRunner struct {
	sess  commandSession
	sleep func(time.Duration) // swapped out in tests
	state runState
}

func newTimedRunner(sess commandSession) *timedRunner {
	return &timedRunner{
		sess:  sess,
		sleep: time.Sleep,
	}
}

// Run blocks for the full wait on success. A failed pre-wait check
// aborts before the wait starts; neither check is retried, and a
// failed run is not re-attempted here.
func (r *timedRunner) Run(cmd string, wait time.Duration) error {
	r.state = stateIdle

	if err := r.sess.Send(cmd); err != nil {
		r.state = stateFailed
		return err
	}
	r.state = stateSent

	if err := r.sess.CheckErrors(); err != nil {
		r.state = stateFailed
		return err
	}

	r.state = stateWaiting
	r.sleep(wait)

	if err := r.sess.CheckErrors(); err != nil {
		r.state = stateFailed
		return err
	}

	r.state = stateVerified
	return nil
}
