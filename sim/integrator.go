package sim

import (
	"math"

	"galcrash/galaxy"
	"galcrash/geom"
)

// step advances every body by dt with a semi-implicit Euler update.
// Accelerations come from the two cores only, evaluated at their pre-step
// positions so that every body sees the same field. Stars are test
// particles: they feel both cores but pull on nothing.
//
// No softening is applied to the inverse-square law. A body passing
// arbitrarily close to a core produces an arbitrarily large acceleration;
// the caller is responsible for catching the resulting non-finite values.
func step(bodies []galaxy.Body, masses [2]float64, dt float64) {
	corePos := [2]geom.Vec{bodies[0].Pos, bodies[1].Pos}

	for i := range bodies {
		var acc geom.Vec
		for c := 0; c < 2; c++ {
			if i == c {
				continue
			}
			d := corePos[c]
			d.Sub(&bodies[i].Pos)

			r2 := d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
			f := masses[c] / (r2 * math.Sqrt(r2))
			acc[0] += f * d[0]
			acc[1] += f * d[1]
			acc[2] += f * d[2]
		}

		b := &bodies[i]
		for dim := 0; dim < 3; dim++ {
			b.Vel[dim] += acc[dim] * dt
			b.Pos[dim] += b.Vel[dim] * dt
		}
	}
}

// finite reports whether every position and velocity component of every
// body is a finite number.
func finite(bodies []galaxy.Body) bool {
	for i := range bodies {
		for dim := 0; dim < 3; dim++ {
			p, v := bodies[i].Pos[dim], bodies[i].Vel[dim]
			if math.IsNaN(p) || math.IsInf(p, 0) {
				return false
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
