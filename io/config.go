package io

import (
	"galcrash/galaxy"
)

const ExampleSimulationFile = `[Simulation]

#######################
# Required Parameters #
#######################

# Number of star rings around each core.
Rings0 = 5
Rings1 = 5

# Radial spacing between successive rings.
RingSeparation = 3

# Periastron distance of the two cores' orbit.
MinSeparation = 3

# Mass of each core. Stars are massless test particles. The gravitational
# constant is fixed to 1, so masses and distances set the time unit.
Mass0 = 1
Mass1 = 0.7

# Eccentricity of the cores' relative orbit. Must be at least 0 and below 1:
# parabolic and hyperbolic encounters are not supported.
Eccentricity = 0.3

# Simulation seconds per step.
TimeStep = 0.001

# Number of steps to run.
Steps = 10000

# Directory which snapshot files will be written to.
Output = path/to/output/dir

#######################
# Optional Parameters #
#######################

# Tilt of each galaxy's disk relative to the cores' orbital plane, in
# radians. Default is 0.
# Inclination0 = 0.123
# Inclination1 = 0.123

# Write a snapshot every this many steps. Default is to write only the
# final state.
# SnapshotEvery = 1000

# Output files which are useful for profiling and debugging.
# ProfileFile = prof.out
# LogFile = log.out`

// SimulationWrapper is the gcfg wrapper for files with a [Simulation]
// section.
type SimulationWrapper struct {
	Simulation SimulationConfig
}

// SimulationConfig mirrors the [Simulation] section of a configuration
// file: the galaxy.Config fields plus the run controls of the headless
// driver.
type SimulationConfig struct {
	Rings0, Rings1             int
	RingSeparation             float64
	MinSeparation              float64
	Inclination0, Inclination1 float64
	Mass0, Mass1               float64
	Eccentricity               float64

	TimeStep      float64
	Steps         int
	SnapshotEvery int
	Output        string

	ProfileFile string
	LogFile     string
}

// DefaultSimulationWrapper returns a wrapper ready for gcfg.ReadFileInto.
// All optional [Simulation] parameters default to their zero values.
func DefaultSimulationWrapper() *SimulationWrapper {
	return &SimulationWrapper{}
}

func (con *SimulationConfig) ValidTimeStep() bool { return con.TimeStep > 0 }

func (con *SimulationConfig) ValidSteps() bool { return con.Steps > 0 }

func (con *SimulationConfig) ValidOutput() bool { return con.Output != "" }

// GalaxyConfig converts the file representation into the in-memory record
// the generator consumes. Field validity beyond shape is left to
// galaxy.Config.Validate.
func (con *SimulationConfig) GalaxyConfig() *galaxy.Config {
	return &galaxy.Config{
		Rings:          [2]int{con.Rings0, con.Rings1},
		RingSeparation: con.RingSeparation,
		MinSeparation:  con.MinSeparation,
		Inclinations:   [2]float64{con.Inclination0, con.Inclination1},
		Masses:         [2]float64{con.Mass0, con.Mass1},
		Eccentricity:   con.Eccentricity,
	}
}
