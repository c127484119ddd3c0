/*geom contains the small set of geometric primitives used by the galaxy
collision kernel: a 3D vector and the rotation matrices which tilt a galactic
disk out of the cores' orbital plane.
*/
package geom

import (
	"math"

	"galcrash/mat"
)

// Vec is a three dimensional vector.
type Vec [3]float64

// Add adds u to v in place.
func (v *Vec) Add(u *Vec) {
	v[0] += u[0]
	v[1] += u[1]
	v[2] += u[2]
}

// Sub subtracts u from v in place.
func (v *Vec) Sub(u *Vec) {
	v[0] -= u[0]
	v[1] -= u[1]
	v[2] -= u[2]
}

// Scale multiplies every component of v by s.
func (v *Vec) Scale(s float64) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
}

// Norm returns the Euclidean length of v.
func (v *Vec) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Rotate rotates a vector by the given rotation matrix.
func (v *Vec) Rotate(m *mat.Matrix) {
	v0 := m.Vals[0]*v[0] + m.Vals[1]*v[1] + m.Vals[2]*v[2]
	v1 := m.Vals[3]*v[0] + m.Vals[4]*v[1] + m.Vals[5]*v[2]
	v2 := m.Vals[6]*v[0] + m.Vals[7]*v[1] + m.Vals[8]*v[2]
	v[0], v[1], v[2] = v0, v1, v2
}

// InclinationMatrix creates the rotation matrix which tilts a galactic disk
// by the angle phi. The rotation axis lies in the disk plane, so a point at
// (x, y, 0) is carried to (x cos(phi), y, -x sin(phi)).
func InclinationMatrix(phi float64) *mat.Matrix {
	sin, cos := math.Sincos(phi)
	vals := []float64{
		cos, 0, sin,
		0, 1, 0,
		-sin, 0, cos,
	}
	return mat.NewMatrix(vals, 3, 3)
}
