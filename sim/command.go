package sim

import (
	"fmt"

	"galcrash/galaxy"
)

// CommandType enumerates the control signals the UI layer can send between
// frames.
type CommandType int

const (
	// Pause suppresses updates until Resume.
	Pause CommandType = iota
	// Resume re-enables updates after Pause.
	Resume
	// ReverseTime flips the sign of the time direction.
	ReverseTime
	// FastForward requests that the next update apply Seconds as a single
	// larger (possibly negative) step instead of the regular time step.
	FastForward
	// Restart regenerates the body list, from Config if one is supplied
	// and from the stored configuration otherwise.
	Restart
)

// Command is a control message dispatched into a Simulation between frames.
// Physics stays decoupled from whatever UI produced the message.
type Command struct {
	Type CommandType

	// Seconds is the signed offset for FastForward commands.
	Seconds float64
	// Config optionally replaces the configuration on Restart.
	Config *galaxy.Config
}

// Dispatch applies cmd to the simulation. All commands except Restart
// require a Running simulation.
func (s *Simulation) Dispatch(cmd Command) error {
	switch cmd.Type {
	case Pause:
		if s.state != Running {
			return ErrNotRunning
		}
		s.paused = true
	case Resume:
		if s.state != Running {
			return ErrNotRunning
		}
		s.paused = false
	case ReverseTime:
		if s.state != Running {
			return ErrNotRunning
		}
		s.direction = -s.direction
	case FastForward:
		if s.state != Running {
			return ErrNotRunning
		}
		s.fastForward = cmd.Seconds
		s.ffPending = true
	case Restart:
		cfg := s.cfg
		if cmd.Config != nil {
			cfg = *cmd.Config
		}
		timeStep := s.timeStep
		s.Restart()
		return s.SetInitial(&cfg, timeStep)
	default:
		return fmt.Errorf("unknown command type %d", cmd.Type)
	}
	return nil
}
