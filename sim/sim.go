/*sim advances a galaxy collision through time. A Simulation owns the body
list produced by the galaxy package and steps it once per displayed frame
with a semi-implicit Euler integrator, under external control signals for
pausing, time reversal, fast-forward and restart.

The package is single threaded by design: the frame-loop driver is the only
writer, and readers only ever see the flat snapshot it hands out between
updates.
*/
package sim

import (
	"errors"
	"fmt"

	"galcrash/galaxy"
)

// State identifies the phase of a Simulation's lifecycle.
type State int

const (
	// Uninitialized means no body list exists yet; only SetInitial is
	// valid.
	Uninitialized State = iota
	// Running means the Simulation holds a body list and can be stepped.
	Running
)

// ErrNotRunning is returned by operations which need an initial state
// before SetInitial has provided one.
var ErrNotRunning = errors.New("simulation has no initial state")

// ErrDegenerate is returned by Update when a step produced a non-finite
// position or velocity, usually because a body passed through a core. The
// step is rolled back and the last valid state kept, so rendering can
// continue from the previous frame.
var ErrDegenerate = errors.New(
	"simulation step produced non-finite values and was dropped")

// InvariantError reports a body list whose shape does not match the
// configuration. It indicates a programming error in the caller, not a
// recoverable condition.
type InvariantError struct {
	Got, Want int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf(
		"body list has %d bodies, but the configuration requires %d",
		e.Got, e.Want,
	)
}

// Simulation is the mutable state of one run. The zero value is an
// Uninitialized simulation ready for SetInitial.
type Simulation struct {
	cfg    galaxy.Config
	bodies []galaxy.Body
	prev   []galaxy.Body

	state     State
	timeStep  float64
	direction float64
	paused    bool

	fastForward float64
	ffPending   bool

	time float64
}

// New returns an Uninitialized Simulation.
func New() *Simulation {
	return &Simulation{direction: 1}
}

// State returns the current lifecycle state.
func (s *Simulation) State() State { return s.state }

// Paused reports whether updates are currently suppressed.
func (s *Simulation) Paused() bool { return s.paused }

// TimeDirection returns +1 when time runs forward and -1 when reversed.
func (s *Simulation) TimeDirection() float64 { return s.direction }

// Time returns the accumulated simulation time, signed by direction.
func (s *Simulation) Time() float64 { return s.time }

// BodyCount returns the number of bodies, or 0 before SetInitial.
func (s *Simulation) BodyCount() int { return len(s.bodies) }

// SetInitial generates the body list for cfg and moves the Simulation from
// Uninitialized to Running. timeStep is the unsigned per-frame step size,
// derived once by the caller from the display refresh rate. Pause and
// direction flags survive a restart; elapsed time does not.
func (s *Simulation) SetInitial(cfg *galaxy.Config, timeStep float64) error {
	bodies, err := galaxy.Generate(cfg)
	if err != nil {
		return err
	}

	s.cfg = *cfg
	s.bodies = bodies
	s.prev = make([]galaxy.Body, len(bodies))
	s.timeStep = timeStep
	s.time = 0
	if s.direction == 0 {
		s.direction = 1
	}
	s.state = Running
	return nil
}

// Restart discards the body list and returns to Uninitialized. The stored
// configuration is kept so a following SetInitial can reuse it.
func (s *Simulation) Restart() {
	s.bodies = nil
	s.prev = nil
	s.time = 0
	s.state = Uninitialized
}

// Config returns the configuration of the current run.
func (s *Simulation) Config() galaxy.Config { return s.cfg }

// Update advances the simulation by one frame. While paused it is a no-op
// which still counts as a valid frame. A pending fast-forward request is
// consumed as a single larger step. If the step produces non-finite values
// it is rolled back and ErrDegenerate returned, leaving the last valid
// state intact.
func (s *Simulation) Update() error {
	if s.state != Running {
		return ErrNotRunning
	}
	if want := galaxy.BodyCount(&s.cfg); len(s.bodies) != want {
		return &InvariantError{Got: len(s.bodies), Want: want}
	}
	if s.paused {
		return nil
	}

	dt := s.timeStep * s.direction
	if s.ffPending {
		dt = s.fastForward
		s.fastForward = 0
		s.ffPending = false
	}

	copy(s.prev, s.bodies)
	step(s.bodies, s.cfg.Masses, dt)
	if !finite(s.bodies) {
		copy(s.bodies, s.prev)
		return ErrDegenerate
	}

	s.time += dt
	return nil
}

// Snapshot writes the current positions into out as (x, y, z) triples in
// body-list order and returns it, growing out as needed. The returned slice
// is a copy: callers may read it until the next Update but must not hand it
// back to the simulation.
func (s *Simulation) Snapshot(out []float64) []float64 {
	n := 3 * len(s.bodies)
	if cap(out) < n {
		out = make([]float64, n)
	}
	out = out[:n]

	for i := range s.bodies {
		out[3*i] = s.bodies[i].Pos[0]
		out[3*i+1] = s.bodies[i].Pos[1]
		out[3*i+2] = s.bodies[i].Pos[2]
	}
	return out
}
