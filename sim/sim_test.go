package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"galcrash/galaxy"
)

func testConfig() *galaxy.Config {
	return &galaxy.Config{
		Rings:          [2]int{3, 2},
		RingSeparation: 3,
		MinSeparation:  3,
		Inclinations:   [2]float64{0.123, -0.4},
		Masses:         [2]float64{1, 0.7},
		Eccentricity:   0.3,
	}
}

func runningSim(t *testing.T, timeStep float64) *Simulation {
	s := New()
	if err := s.SetInitial(testConfig(), timeStep); err != nil {
		t.Fatal(err.Error())
	}
	return s
}

func TestStateMachine(t *testing.T) {
	s := New()
	assert.Equal(t, Uninitialized, s.State())
	assert.Equal(t, ErrNotRunning, s.Update())
	assert.Equal(t, ErrNotRunning, s.Dispatch(Command{Type: Pause}))

	if err := s.SetInitial(testConfig(), 1e-3); err != nil {
		t.Fatal(err.Error())
	}
	assert.Equal(t, Running, s.State())
	assert.Equal(t, galaxy.BodyCount(testConfig()), s.BodyCount())

	s.Restart()
	assert.Equal(t, Uninitialized, s.State())
	assert.Equal(t, ErrNotRunning, s.Update())
}

func TestSetInitialRejectsBadConfig(t *testing.T) {
	s := New()
	cfg := testConfig()
	cfg.Eccentricity = 1.2

	err := s.SetInitial(cfg, 1e-3)
	if err == nil {
		t.Fatal("SetInitial accepted an unbound orbit")
	}
	if _, ok := err.(*galaxy.ConfigError); !ok {
		t.Errorf("error is %T instead of *galaxy.ConfigError", err)
	}
	assert.Equal(t, Uninitialized, s.State())
}

func TestPauseLeavesStateUntouched(t *testing.T) {
	s := runningSim(t, 1e-3)
	if err := s.Dispatch(Command{Type: Pause}); err != nil {
		t.Fatal(err.Error())
	}

	before := make([]galaxy.Body, len(s.bodies))
	copy(before, s.bodies)

	for i := 0; i < 3; i++ {
		if err := s.Update(); err != nil {
			t.Fatal(err.Error())
		}
	}
	assert.Equal(t, before, s.bodies, "paused updates must not move bodies")
	assert.Equal(t, 0.0, s.Time())

	if err := s.Dispatch(Command{Type: Resume}); err != nil {
		t.Fatal(err.Error())
	}
	if err := s.Update(); err != nil {
		t.Fatal(err.Error())
	}
	assert.NotEqual(t, before, s.bodies, "resumed updates must move bodies")
}

func TestReversedStepReturnsClose(t *testing.T) {
	dt := 1e-3
	s := runningSim(t, dt)

	before := make([]galaxy.Body, len(s.bodies))
	copy(before, s.bodies)

	if err := s.Update(); err != nil {
		t.Fatal(err.Error())
	}
	if err := s.Dispatch(Command{Type: ReverseTime}); err != nil {
		t.Fatal(err.Error())
	}
	if err := s.Update(); err != nil {
		t.Fatal(err.Error())
	}

	// One forward step followed by one backward step is only reversible up
	// to the local truncation error of semi-implicit Euler, which is of
	// order dt^2 here.
	eps := 100 * dt * dt
	for i := range before {
		for dim := 0; dim < 3; dim++ {
			diff := s.bodies[i].Pos[dim] - before[i].Pos[dim]
			if diff > eps || diff < -eps {
				t.Fatalf(
					"body %d drifted by %g in dimension %d after reversal",
					i, diff, dim,
				)
			}
		}
	}
}

func TestReverseTogglesDirection(t *testing.T) {
	s := runningSim(t, 1e-3)
	assert.Equal(t, 1.0, s.TimeDirection())

	if err := s.Dispatch(Command{Type: ReverseTime}); err != nil {
		t.Fatal(err.Error())
	}
	assert.Equal(t, -1.0, s.TimeDirection())

	if err := s.Update(); err != nil {
		t.Fatal(err.Error())
	}
	assert.Equal(t, -1e-3, s.Time())

	if err := s.Dispatch(Command{Type: ReverseTime}); err != nil {
		t.Fatal(err.Error())
	}
	assert.Equal(t, 1.0, s.TimeDirection())
}

func TestFastForwardIsOneShot(t *testing.T) {
	dt := 1e-3
	s := runningSim(t, dt)

	if err := s.Dispatch(Command{Type: FastForward, Seconds: 0.5}); err != nil {
		t.Fatal(err.Error())
	}
	if err := s.Update(); err != nil {
		t.Fatal(err.Error())
	}
	assert.Equal(t, 0.5, s.Time(), "fast-forward applied as one step")

	if err := s.Update(); err != nil {
		t.Fatal(err.Error())
	}
	assert.Equal(t, 0.5+dt, s.Time(), "following update uses the time step")
}

func TestRewind(t *testing.T) {
	s := runningSim(t, 1e-3)
	if err := s.Dispatch(Command{Type: FastForward, Seconds: -0.25}); err != nil {
		t.Fatal(err.Error())
	}
	if err := s.Update(); err != nil {
		t.Fatal(err.Error())
	}
	assert.Equal(t, -0.25, s.Time())
}

func TestDegenerateStepRolledBack(t *testing.T) {
	s := runningSim(t, 1e-3)

	// Drop a star onto core 0. With no softening the acceleration there is
	// undefined and the step must be rejected.
	s.bodies[2].Pos = s.bodies[0].Pos

	before := make([]galaxy.Body, len(s.bodies))
	copy(before, s.bodies)

	assert.Equal(t, ErrDegenerate, s.Update())
	assert.Equal(t, before, s.bodies, "degenerate step must be rolled back")
	assert.Equal(t, 0.0, s.Time())
}

func TestBodyCountInvariant(t *testing.T) {
	s := runningSim(t, 1e-3)
	s.bodies = s.bodies[:len(s.bodies)-1]

	err := s.Update()
	if err == nil {
		t.Fatal("Update accepted a truncated body list")
	}
	if _, ok := err.(*InvariantError); !ok {
		t.Errorf("error is %T instead of *InvariantError", err)
	}
}

func TestSnapshotLayout(t *testing.T) {
	s := runningSim(t, 1e-3)

	snap := s.Snapshot(nil)
	assert.Equal(t, 3*s.BodyCount(), len(snap))

	for i := range s.bodies {
		for dim := 0; dim < 3; dim++ {
			if snap[3*i+dim] != s.bodies[i].Pos[dim] {
				t.Fatalf("snapshot disagrees with body %d dimension %d",
					i, dim)
			}
		}
	}

	// Reusing a buffer must not change the result.
	snap2 := s.Snapshot(snap)
	assert.Equal(t, snap, snap2)
}

func TestRestartCommand(t *testing.T) {
	s := runningSim(t, 1e-3)
	for i := 0; i < 5; i++ {
		if err := s.Update(); err != nil {
			t.Fatal(err.Error())
		}
	}

	if err := s.Dispatch(Command{Type: Restart}); err != nil {
		t.Fatal(err.Error())
	}
	assert.Equal(t, Running, s.State())
	assert.Equal(t, 0.0, s.Time())

	fresh, err := galaxy.Generate(testConfig())
	if err != nil {
		t.Fatal(err.Error())
	}
	assert.Equal(t, fresh, s.bodies, "restart regenerates the initial state")

	// Restart with a replacement configuration.
	cfg := testConfig()
	cfg.Rings = [2]int{1, 1}
	if err := s.Dispatch(Command{Type: Restart, Config: cfg}); err != nil {
		t.Fatal(err.Error())
	}
	assert.Equal(t, galaxy.BodyCount(cfg), s.BodyCount())
}
