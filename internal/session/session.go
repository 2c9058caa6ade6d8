// Package session models the live-camera session the view runs while it is on screen:
// it is started when the view appears, paused when it disappears, and reports
// failures and interruptions to a delegate.
package session

import (
	"errors"
	"fmt"
)

// ErrShaderUnavailable is reported when the default lighting shader cannot be compiled.
var ErrShaderUnavailable = errors.New("session: lighting shader unavailable")

// State is the lifecycle state of a session.
type State int

const (
	Idle State = iota
	Running
	Paused
	Interrupted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Interrupted:
		return "interrupted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Configuration holds world-tracking options. The desktop host accepts them but does not act on them.
type Configuration struct {
	PlaneDetection  bool
	LightEstimation bool
}

// WorldTracking returns the configuration the view runs with.
func WorldTracking() Configuration {
	return Configuration{LightEstimation: true}
}

// Session is the capability the view uses to start and stop live tracking.
type Session interface {
	Run(cfg Configuration)
	Pause()
}

// Delegate receives session notifications. Implementations must not block: calls are
// made synchronously from the host's event handling.
type Delegate interface {
	// DidFail is called when the session stops because of an error.
	DidFail(err error)
	// WasInterrupted is called when the host suspends tracking (e.g. the window lost focus).
	WasInterrupted()
	// InterruptionEnded is called when tracking resumes after an interruption.
	InterruptionEnded()
}

// NopDelegate ignores every notification.
type NopDelegate struct{}

func (NopDelegate) DidFail(error)      {}
func (NopDelegate) WasInterrupted()    {}
func (NopDelegate) InterruptionEnded() {}

// Tracker is the host-side Session. The host feeds it events with Fail, Interrupt and
// Resume; it keeps the state and forwards valid notifications to the delegate.
type Tracker struct {
	delegate Delegate
	state    State
	cfg      Configuration
	err      error
}

// NewTracker returns an idle tracker reporting to d. A nil d is replaced by NopDelegate.
func NewTracker(d Delegate) *Tracker {
	if d == nil {
		d = NopDelegate{}
	}
	return &Tracker{delegate: d}
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

// Configuration returns the configuration of the last Run.
func (t *Tracker) Configuration() Configuration {
	return t.cfg
}

// Err returns the last error reported with Fail, cleared by Run.
func (t *Tracker) Err() error {
	return t.err
}

// Run starts (or restarts) the session with cfg.
func (t *Tracker) Run(cfg Configuration) {
	t.cfg = cfg
	t.err = nil
	t.state = Running
}

// Pause stops tracking. It does nothing when the session never ran.
func (t *Tracker) Pause() {
	if t.state == Idle {
		return
	}
	t.state = Paused
}

// Fail records err, pauses the session and notifies the delegate.
// Failures of a session that is not running or interrupted are dropped.
func (t *Tracker) Fail(err error) {
	if err == nil || (t.state != Running && t.state != Interrupted) {
		return
	}
	t.err = err
	t.state = Paused
	t.delegate.DidFail(err)
}

// Interrupt suspends a running session and notifies the delegate.
func (t *Tracker) Interrupt() {
	if t.state != Running {
		return
	}
	t.state = Interrupted
	t.delegate.WasInterrupted()
}

// Resume continues an interrupted session and notifies the delegate.
func (t *Tracker) Resume() {
	if t.state != Interrupted {
		return
	}
	t.state = Running
	t.delegate.InterruptionEnded()
}

var _ Session = (*Tracker)(nil)
