/*galaxy generates the initial state of a two-galaxy collision: two massive
cores on a bound Kepler orbit plus rings of massless tracer stars on circular
orbits around each core. Generation is deterministic, so identical Configs
always produce bit-identical body lists.

The gravitational constant is fixed to 1 by unit convention throughout.
*/
package galaxy

import (
	"math"

	"galcrash/geom"
)

// Body is a point body of the simulation. Only the two cores have mass, and
// their masses live in the Config; stars are test particles.
type Body struct {
	Pos, Vel geom.Vec
}

// StarsInRing returns the number of stars placed on ring k (1-indexed,
// innermost first). Outer rings hold more stars, following a fixed density
// law independent of the configuration.
func StarsInRing(k int) int {
	return 12 + 6*(k-1)
}

// StarsInDisk returns the number of stars in a galaxy with the given number
// of rings.
func StarsInDisk(rings int) int {
	n := 0
	for k := 1; k <= rings; k++ {
		n += StarsInRing(k)
	}
	return n
}

// BodyCount returns the length of the body list Generate produces for cfg:
// two cores plus the stars of both disks.
func BodyCount(cfg *Config) int {
	return 2 + StarsInDisk(cfg.Rings[0]) + StarsInDisk(cfg.Rings[1])
}

// Generate produces the full body list for cfg. Indices 0 and 1 are the two
// cores, followed by galaxy 0's stars and then galaxy 1's stars, each disk
// ordered innermost ring first. The cores start at apastron in the
// center-of-mass frame with their momenta balanced.
//
// If cfg is invalid a *ConfigError is returned and no body list is produced.
func Generate(cfg *Config) ([]Body, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bodies := make([]Body, BodyCount(cfg))

	e := cfg.Eccentricity
	m0, m1 := cfg.Masses[0], cfg.Masses[1]
	M := m0 + m1

	// Two-body placement: semi-major axis from the periastron distance,
	// apastron separation, and the relative speed there from vis-viva.
	a := cfg.MinSeparation / (1 - e)
	r := a * (1 + e)
	v0 := math.Sqrt(a*(1-e*e)*M) / r

	bodies[0] = Body{
		Pos: geom.Vec{-r * m1 / M, 0, 0},
		Vel: geom.Vec{0, -v0 * m1 / M, 0},
	}
	bodies[1] = Body{
		Pos: geom.Vec{r * m0 / M, 0, 0},
		Vel: geom.Vec{0, v0 * m0 / M, 0},
	}

	i := 2
	for g := 0; g < 2; g++ {
		n := StarsInDisk(cfg.Rings[g])
		diskInto(
			bodies[i:i+n], &bodies[g], cfg.Masses[g],
			cfg.Inclinations[g], cfg.Rings[g], cfg.RingSeparation,
		)
		i += n
	}

	return bodies, nil
}

// diskInto fills out with the stars of one galaxy: rings of evenly spaced
// stars on circular orbits around the host core, tilted by the disk's
// inclination and then boosted into the host's frame. Stars are written by
// index, so out must have length StarsInDisk(rings).
func diskInto(
	out []Body, core *Body, mass, inclination float64,
	rings int, ringSep float64,
) {
	rot := geom.InclinationMatrix(inclination)

	i := 0
	for k := 1; k <= rings; k++ {
		r := float64(k) * ringSep
		// Circular-orbit speed around the host core alone. The other
		// core's pull and the other stars are ignored at setup.
		v := math.Sqrt(mass / r)

		n := StarsInRing(k)
		dtheta := 2 * math.Pi / float64(n)
		for j := 0; j < n; j++ {
			sin, cos := math.Sincos(float64(j) * dtheta)

			pos := geom.Vec{r * cos, r * sin, 0}
			vel := geom.Vec{-v * sin, v * cos, 0}
			pos.Rotate(rot)
			vel.Rotate(rot)
			pos.Add(&core.Pos)
			vel.Add(&core.Vel)

			out[i] = Body{Pos: pos, Vel: vel}
			i++
		}
	}
}
