package galaxy

import (
	"fmt"
)

// Config specifies the initial state of a two-galaxy collision. It is
// immutable for the lifetime of one run and only replaced wholesale on
// restart.
type Config struct {
	// Rings gives the number of star rings around each core.
	Rings [2]int
	// RingSeparation is the radial spacing between successive rings.
	RingSeparation float64
	// MinSeparation is the periastron distance of the two cores' orbit.
	MinSeparation float64
	// Inclinations gives the tilt of each galaxy's disk relative to the
	// cores' orbital plane, in radians.
	Inclinations [2]float64
	// Masses gives the mass of each core. Stars are test particles and
	// carry no mass.
	Masses [2]float64
	// Eccentricity of the cores' relative orbit, in [0, 1). Parabolic and
	// hyperbolic orbits are outside the supported domain.
	Eccentricity float64
}

// ConfigError describes a Config which cannot produce a valid body list.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{fmt.Sprintf(format, args...)}
}

// Validate returns a *ConfigError describing the first invalid field of
// cfg, or nil if cfg can be handed to Generate.
func (cfg *Config) Validate() error {
	for i, rings := range cfg.Rings {
		if rings <= 0 {
			return configErrorf(
				"Galaxy %d needs a positive ring count, but has %d.",
				i, rings,
			)
		}
	}
	for i, mass := range cfg.Masses {
		if mass <= 0 {
			return configErrorf(
				"Core %d needs a positive mass, but has %g.", i, mass,
			)
		}
	}
	if cfg.RingSeparation <= 0 {
		return configErrorf(
			"RingSeparation must be positive, but is %g.",
			cfg.RingSeparation,
		)
	}
	if cfg.MinSeparation <= 0 {
		return configErrorf(
			"MinSeparation must be positive, but is %g.", cfg.MinSeparation,
		)
	}
	if cfg.Eccentricity < 0 || cfg.Eccentricity >= 1 {
		return configErrorf(
			"Eccentricity must be in [0, 1), but is %g. Parabolic and "+
				"hyperbolic orbits are not supported.", cfg.Eccentricity,
		)
	}
	return nil
}
